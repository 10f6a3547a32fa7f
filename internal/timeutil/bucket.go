package timeutil

import (
	"time"
)

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Monday on or before t in t's location.
// Weeks start on Monday (ISO 8601).
func StartOfWeek(t time.Time) time.Time {
	daysSinceMonday := (int(t.Weekday()) + 6) % 7
	return StartOfDay(t.AddDate(0, 0, -daysSinceMonday))
}

// StartOfMonth returns midnight of the first day of t's month in t's location.
func StartOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// StartOfYear returns midnight of January 1st of t's year in t's location.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	return StartOfDay(a).Equal(StartOfDay(b.In(a.Location())))
}
