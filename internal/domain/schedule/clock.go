package schedule

import (
	"fmt"
	"time"
)

// ParseClock converts an "HH:MM" clock string to minutes since midnight.
func ParseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("invalid clock time %q: %w", s, err)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// FormatClock renders minutes since midnight as "HH:MM".
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// ParseDate parses a "YYYY-MM-DD" calendar day. The returned time is anchored
// at noon so that weekday resolution never shifts across a DST or UTC
// boundary.
func ParseDate(date string) (time.Time, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC), nil
}

// Weekday resolves the day of week for a "YYYY-MM-DD" calendar day.
func Weekday(date string) (time.Weekday, error) {
	d, err := ParseDate(date)
	if err != nil {
		return 0, err
	}
	return d.Weekday(), nil
}
