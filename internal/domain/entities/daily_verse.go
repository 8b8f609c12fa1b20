package entities

import "time"

// DailyVerse is the verse selected for one calendar day.
type DailyVerse struct {
	Date             time.Time `json:"date"` // start of the selected day
	Verse            Verse     `json:"verse"`
	PrayerTitle      string    `json:"prayerTitle"`
	PrayerTitleHindi string    `json:"prayerTitleHindi,omitempty"`
}

// IsToday reports whether the verse was selected for now's calendar day.
func (d *DailyVerse) IsToday(now time.Time, loc *time.Location) bool {
	return SameDay(d.Date, now, loc)
}

// DaysSince returns how many calendar days passed since the selection.
func (d *DailyVerse) DaysSince(now time.Time, loc *time.Location) int {
	return DaysBetween(d.Date, now, loc)
}
