// Package timefmt converts between "HH:MM" clock strings and display text.
package timefmt

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrBadClock is returned (wrapped) by Parse for anything that is not a
// valid 24-hour clock string.
var ErrBadClock = errors.New("invalid clock time")

// clockPattern accepts H:MM or HH:MM with hour 0-23 and minute 00-59.
// Notably it rejects "24:00" and single-digit minutes like "1:5".
var clockPattern = regexp.MustCompile(`^([01]?\d|2[0-3]):([0-5]\d)$`)

// Parse parses a 24-hour "HH:MM" string into hour and minute.
func Parse(text string) (hour, minute int, err error) {
	m := clockPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadClock, text)
	}
	// The pattern only matches ASCII digits, so this cannot fail.
	fmt.Sscanf(m[1], "%d", &hour)
	fmt.Sscanf(m[2], "%d", &minute)
	return hour, minute, nil
}

// to12h converts a 24-hour hour (0..23) to a 12-hour hour (1..12)
func to12h(hour int) int {
	v := hour % 12
	if v == 0 {
		return 12
	}
	return v
}

func meridiem(hour int) string {
	if hour < 12 {
		return "AM"
	}
	return "PM"
}

// Format renders an hour/minute pair for display. In 12-hour mode the
// hour is converted (0 becomes 12) and an AM/PM suffix is appended;
// hour 0 is AM and hour 12 is PM.
func Format(hour, minute int, use24h bool) string {
	if use24h {
		return fmt.Sprintf("%02d:%02d", hour, minute)
	}
	return fmt.Sprintf("%02d:%02d %s", to12h(hour), minute, meridiem(hour))
}

// FormatSeconds is Format with a seconds field, used by the live clock.
func FormatSeconds(hour, minute, second int, use24h bool) string {
	if use24h {
		return fmt.Sprintf("%02d:%02d:%02d", hour, minute, second)
	}
	return fmt.Sprintf("%02d:%02d:%02d %s", to12h(hour), minute, second, meridiem(hour))
}
