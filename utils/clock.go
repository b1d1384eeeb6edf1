package utils

import (
	"fmt"
	"time"
)

// ParseClockTime converts a "HH:MM" (or "HH:MM:SS") string into minutes from
// midnight. Seconds, when present, are ignored; availability blocks carry
// minute precision.
func ParseClockTime(s string) (int, error) {
	var hh, mm, ss int
	if _, err := fmt.Sscanf(s, "%d:%d:%d", &hh, &mm, &ss); err != nil {
		if _, err := fmt.Sscanf(s, "%d:%d", &hh, &mm); err != nil {
			return 0, fmt.Errorf("invalid time of day %q: expected HH:MM", s)
		}
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("invalid time of day %q: out of range", s)
	}
	return hh*60 + mm, nil
}

// FormatClockTime renders minutes from midnight as "HH:MM".
func FormatClockTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// DayOfWeek maps a date to the 0=Sunday..6=Saturday convention used by
// availability blocks. Normalized explicitly rather than trusting any
// locale-dependent weekday numbering.
func DayOfWeek(t time.Time) int {
	switch t.Weekday() {
	case time.Sunday:
		return 0
	case time.Monday:
		return 1
	case time.Tuesday:
		return 2
	case time.Wednesday:
		return 3
	case time.Thursday:
		return 4
	case time.Friday:
		return 5
	default:
		return 6
	}
}
