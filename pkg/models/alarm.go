package models

import "time"

// Sound selects which tone an alarm plays when it rings
type Sound string

const (
	SoundBeep  Sound = "beep"
	SoundChime Sound = "chime"
)

// Alarm is a persisted alarm record
type Alarm struct {
	ID      string         `json:"id"`      // Stable identity, assigned at creation (UUID)
	Time    string         `json:"time"`    // Wall-clock target, "HH:MM", 24-hour
	Label   string         `json:"label"`   // User-facing description
	Enabled bool           `json:"enabled"` // Disabled alarms are never due
	Repeat  []time.Weekday `json:"repeat"`  // Weekdays to fire on; empty = one-shot
	Sound   Sound          `json:"sound"`   // Tone to play when ringing

	// LastFired is the minute epoch (unix seconds / 60) of the last firing,
	// guarding against a second firing within the same minute
	LastFired int64 `json:"lastFired"`
}

// Repeats reports whether the alarm fires on a weekly schedule
func (a *Alarm) Repeats() bool {
	return len(a.Repeat) > 0
}

// RepeatsOn reports whether day is in the alarm's repeat set.
// Duplicate entries in Repeat have no effect; this is a membership test.
func (a *Alarm) RepeatsOn(day time.Weekday) bool {
	for _, d := range a.Repeat {
		if d == day {
			return true
		}
	}
	return false
}

// Clone returns an independent copy whose repeat slice shares no backing
// array with the original
func (a *Alarm) Clone() Alarm {
	c := *a
	if a.Repeat != nil {
		c.Repeat = append([]time.Weekday(nil), a.Repeat...)
	}
	return c
}

// Patch describes a partial alarm update; nil fields are left unchanged
type Patch struct {
	Time    *string
	Label   *string
	Enabled *bool
	Repeat  *[]time.Weekday
	Sound   *Sound
}

// DayLabels maps time.Weekday (0=Sunday) to short display names
var DayLabels = [7]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// RepeatLabel renders the repeat set for display, e.g. "Mon, Wed, Fri",
// or "One-time" for a one-shot alarm
func (a *Alarm) RepeatLabel() string {
	if !a.Repeats() {
		return "One-time"
	}
	out := ""
	for i, d := range a.Repeat {
		if i > 0 {
			out += ", "
		}
		out += DayLabels[int(d)%7]
	}
	return out
}
