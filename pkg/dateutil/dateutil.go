package dateutil

import (
	"fmt"
	"time"
)

// KeyLayout is the canonical date key format used across the service
// (completed dates, report prefixes, editable-window checks).
const KeyLayout = "2006-01-02"

// FormatKey returns the canonical YYYY-MM-DD key for the given calendar
// components. Month is 1-based (time.Month convention).
func FormatKey(year int, month time.Month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, int(month), day)
}

// KeyFromTime returns the canonical date key for t's calendar day.
func KeyFromTime(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey parses a YYYY-MM-DD key into a UTC midnight time.
func ParseKey(key string) (time.Time, error) {
	t, err := time.Parse(KeyLayout, key)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	return t, nil
}

// Midnight strips the time-of-day component, keeping the calendar day.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole calendar days from b to a (a - b). Both
// arguments are truncated to midnight first, so time-of-day never produces
// fractional or off-by-one results.
func DaysBetween(a, b time.Time) int {
	am := Midnight(a).UTC()
	bm := Midnight(b).UTC()
	return int(am.Sub(bm).Hours() / 24)
}

// DaysInMonth returns the number of days in the given month, leap years
// included. Month is 1-based.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the next month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthPrefix returns the YYYY-MM prefix shared by every date key in the
// given month.
func MonthPrefix(year int, month time.Month) string {
	return fmt.Sprintf("%04d-%02d", year, int(month))
}
