package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDaysBetween(t *testing.T) {
	loc := time.UTC
	a := time.Date(2026, time.January, 31, 23, 59, 0, 0, loc)

	assert.Equal(t, 0, DaysBetween(a, a.Add(30*time.Second), loc))
	assert.Equal(t, 1, DaysBetween(a, a.Add(2*time.Minute), loc))
	assert.Equal(t, -1, DaysBetween(a.Add(2*time.Minute), a, loc))
	assert.Equal(t, 365, DaysBetween(a, a.AddDate(1, 0, 0), loc))
}

func TestDaysBetween_AcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		t.Skip("tzdata not available")
	}
	before := time.Date(2026, time.March, 7, 12, 0, 0, 0, loc)
	after := time.Date(2026, time.March, 8, 12, 0, 0, 0, loc)

	assert.Equal(t, 1, DaysBetween(before, after, loc))
	assert.True(t, IsYesterday(before, after, loc))
}

func TestSameDayAndStartOfDay(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	a := time.Date(2026, time.June, 1, 21, 30, 0, 0, time.UTC) // 00:30 on June 2 in loc
	b := time.Date(2026, time.June, 2, 8, 0, 0, 0, loc)

	assert.True(t, SameDay(a, b, loc))
	assert.False(t, SameDay(a, b, time.UTC))

	start := StartOfDay(a, loc)
	require.Equal(t, loc, start.Location())
	assert.Equal(t, 2, start.Day())
	assert.Equal(t, 0, start.Hour())
}

func TestDailyVerse_IsTodayAndDaysSince(t *testing.T) {
	loc := time.FixedZone("IST", 5*3600+1800)
	now := time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC) // 01:30 on the 11th in IST
	dv := DailyVerse{Date: StartOfDay(time.Date(2026, 3, 8, 12, 0, 0, 0, loc), loc)}

	assert.False(t, dv.IsToday(now, loc))
	assert.Equal(t, 3, dv.DaysSince(now, loc))
}
