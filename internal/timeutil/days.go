package timeutil

import "time"

// now is the clock used for relative dates. Tests replace it.
var now = time.Now

// StartOfDay returns midnight (00:00:00) of the given day in the same timezone
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last nanosecond of the given day (23:59:59.999999999)
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Nanosecond)
}

// Today returns midnight of the current day.
func Today() time.Time {
	return StartOfDay(now())
}

// IsInRange checks if the given time t falls within the range [start, end] (inclusive).
// A zero start or end leaves that side open.
func IsInRange(t, start, end time.Time) bool {
	if !start.IsZero() && t.Before(start) {
		return false
	}
	if !end.IsZero() && t.After(end) {
		return false
	}
	return true
}
