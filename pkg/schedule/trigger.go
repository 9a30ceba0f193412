// Package schedule computes when an alarm rings next.
package schedule

import (
	"time"

	"github.com/plursight/daybreak/pkg/models"
	"github.com/plursight/daybreak/pkg/timefmt"
)

// MinuteEpoch returns the number of whole minutes since the unix epoch.
// It is the de-duplication key for alarm firings.
func MinuteEpoch(t time.Time) int64 {
	return t.Unix() / 60
}

// NextTrigger computes the next instant, on or after now, at which the
// alarm should ring. The alarm's Enabled flag is ignored; callers filter
// disabled alarms themselves. Seconds and sub-second precision of now
// are truncated before comparison, so an alarm whose time equals the
// current minute is reported as due now, not deferred to the next
// occurrence; the due scan owns catching exact-minute matches.
//
// One-shot alarms (empty repeat set) whose time already passed today
// roll to the same time tomorrow. Repeating alarms fire at the alarm
// time on the next listed weekday, which can be today.
func NextTrigger(a *models.Alarm, now time.Time) (time.Time, error) {
	hour, minute, err := timefmt.Parse(a.Time)
	if err != nil {
		return time.Time{}, err
	}

	start := now.Truncate(time.Minute)
	candidate := time.Date(start.Year(), start.Month(), start.Day(), hour, minute, 0, 0, start.Location())

	if !a.Repeats() {
		if candidate.Before(start) {
			return candidate.AddDate(0, 0, 1), nil
		}
		return candidate, nil
	}

	today := int(start.Weekday())
	for delta := 0; delta < 8; delta++ {
		day := time.Weekday((today + delta) % 7)
		if !a.RepeatsOn(day) {
			continue
		}
		d := candidate.AddDate(0, 0, delta)
		if !d.Before(start) {
			return d, nil
		}
	}

	// Unreachable for a non-empty repeat set (delta 7 revisits today's
	// weekday a full week ahead), kept as a termination guarantee.
	return candidate.AddDate(0, 0, 7), nil
}
