package schedule

import (
	"errors"
	"testing"
	"time"

	"github.com/plursight/daybreak/pkg/models"
	"github.com/plursight/daybreak/pkg/timefmt"
)

// 2025-01-01 is a Wednesday.
func date(day, hour, min, sec int) time.Time {
	return time.Date(2025, time.January, day, hour, min, sec, 0, time.UTC)
}

func TestNextTriggerOneShot(t *testing.T) {
	tests := []struct {
		name  string
		alarm string
		now   time.Time
		want  time.Time
	}{
		{"future today", "10:01", date(1, 10, 0, 0), date(1, 10, 1, 0)},
		{"past today rolls to tomorrow", "10:01", date(1, 10, 2, 0), date(2, 10, 1, 0)},
		{"exact minute is due now", "10:01", date(1, 10, 1, 0), date(1, 10, 1, 0)},
		{"seconds are truncated", "10:01", date(1, 10, 1, 30), date(1, 10, 1, 0)},
		{"midnight alarm just after midnight", "00:00", date(1, 0, 0, 30), date(1, 0, 0, 0)},
		{"end of day rolls across month", "09:00", date(31, 9, 1, 0), time.Date(2025, time.February, 1, 9, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alarm := &models.Alarm{Time: tt.alarm}
			got, err := NextTrigger(alarm, tt.now)
			if err != nil {
				t.Fatalf("NextTrigger error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextTrigger(%q, %v) = %v, want %v", tt.alarm, tt.now, got, tt.want)
			}
		})
	}
}

func TestNextTriggerRepeating(t *testing.T) {
	monWedFri := []time.Weekday{time.Monday, time.Wednesday, time.Friday}

	tests := []struct {
		name   string
		alarm  string
		repeat []time.Weekday
		now    time.Time
		want   time.Time
	}{
		{
			// It's Wednesday 10:00; 09:00 already passed, next listed day is Friday.
			"passed today skips to next listed day",
			"09:00", monWedFri, date(1, 10, 0, 0), date(3, 9, 0, 0),
		},
		{
			"still ahead today fires today",
			"11:00", monWedFri, date(1, 10, 0, 0), date(1, 11, 0, 0),
		},
		{
			"exact minute on a listed day is due now",
			"10:00", monWedFri, date(1, 10, 0, 0), date(1, 10, 0, 0),
		},
		{
			// Thursday is not listed; wraps past the weekend to Monday the 6th.
			"wraps across the week",
			"09:00", []time.Weekday{time.Monday}, date(2, 9, 30, 0), date(6, 9, 0, 0),
		},
		{
			// A single listed day whose time passed comes back in exactly 7 days.
			"same day next week",
			"09:00", []time.Weekday{time.Wednesday}, date(1, 10, 0, 0), date(8, 9, 0, 0),
		},
		{
			"duplicate weekdays have no effect",
			"11:00", []time.Weekday{time.Wednesday, time.Wednesday}, date(1, 10, 0, 0), date(1, 11, 0, 0),
		},
		{
			"every day fires tomorrow after passing",
			"09:00",
			[]time.Weekday{0, 1, 2, 3, 4, 5, 6},
			date(1, 10, 0, 0), date(2, 9, 0, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alarm := &models.Alarm{Time: tt.alarm, Repeat: tt.repeat}
			got, err := NextTrigger(alarm, tt.now)
			if err != nil {
				t.Fatalf("NextTrigger error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("NextTrigger(%q, %v, %v) = %v, want %v", tt.alarm, tt.repeat, tt.now, got, tt.want)
			}
		})
	}
}

func TestNextTriggerBadTime(t *testing.T) {
	alarm := &models.Alarm{Time: "24:00"}
	if _, err := NextTrigger(alarm, date(1, 10, 0, 0)); !errors.Is(err, timefmt.ErrBadClock) {
		t.Errorf("NextTrigger with bad time: err = %v, want ErrBadClock", err)
	}
}

func TestMinuteEpoch(t *testing.T) {
	base := date(1, 10, 1, 0)
	if MinuteEpoch(base) != MinuteEpoch(base.Add(59*time.Second)) {
		t.Error("instants within the same minute should share an epoch")
	}
	if MinuteEpoch(base) == MinuteEpoch(base.Add(time.Minute)) {
		t.Error("adjacent minutes should have distinct epochs")
	}
	if MinuteEpoch(time.Unix(0, 0)) != 0 {
		t.Error("epoch zero should map to minute zero")
	}
}
