package entities

import "time"

// civilDate maps t to midnight UTC of its calendar day in loc, so that
// subtracting two civil dates always yields a whole number of days.
func civilDate(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DaysBetween returns the number of calendar days from a to b in loc.
// It is negative when b falls on an earlier day than a.
func DaysBetween(a, b time.Time, loc *time.Location) int {
	return int(civilDate(b, loc).Sub(civilDate(a, loc)).Hours() / 24)
}

// SameDay reports whether a and b fall on the same calendar day in loc.
func SameDay(a, b time.Time, loc *time.Location) bool {
	return DaysBetween(a, b, loc) == 0
}

// IsYesterday reports whether t falls on the calendar day before now.
func IsYesterday(t, now time.Time, loc *time.Location) bool {
	return DaysBetween(t, now, loc) == 1
}

// StartOfDay returns local midnight of t's calendar day in loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}
