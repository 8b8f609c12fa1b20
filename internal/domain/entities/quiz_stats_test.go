package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuizStats_Record(t *testing.T) {
	var s QuizStats
	now := time.Date(2026, time.May, 1, 10, 0, 0, 0, time.UTC)

	for _, correct := range []bool{true, true, true, false, true} {
		s.Record(correct, now)
	}

	assert.Equal(t, 5, s.TotalAttempts)
	assert.Equal(t, 4, s.CorrectAttempts)
	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 3, s.BestStreak)
	assert.Equal(t, now, *s.LastAttemptDate)
}

func TestQuizStats_BestStreakNeverDecreases(t *testing.T) {
	var s QuizStats
	answers := []bool{true, false, true, true, false, false, true, true, true, true, false}

	prev := 0
	for _, a := range answers {
		s.Record(a, time.Now())
		assert.GreaterOrEqual(t, s.BestStreak, prev)
		assert.GreaterOrEqual(t, s.BestStreak, s.CurrentStreak)
		assert.LessOrEqual(t, s.CorrectAttempts, s.TotalAttempts)
		prev = s.BestStreak
	}
	assert.Equal(t, 4, s.BestStreak)
}

func TestQuizStats_SuccessRateAndMastery(t *testing.T) {
	tests := []struct {
		name     string
		stats    QuizStats
		rate     float64
		mastered bool
	}{
		{name: "empty", stats: QuizStats{}, rate: 0, mastered: false},
		{name: "streak of three", stats: QuizStats{TotalAttempts: 3, CorrectAttempts: 3, CurrentStreak: 3}, rate: 100, mastered: true},
		{name: "accurate but few attempts", stats: QuizStats{TotalAttempts: 4, CorrectAttempts: 4, CurrentStreak: 2}, rate: 100, mastered: false},
		{name: "eighty percent of five", stats: QuizStats{TotalAttempts: 5, CorrectAttempts: 4, CurrentStreak: 0}, rate: 80, mastered: true},
		{name: "below threshold", stats: QuizStats{TotalAttempts: 10, CorrectAttempts: 7, CurrentStreak: 2}, rate: 70, mastered: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.rate, tt.stats.SuccessRate(), 0.001)
			assert.Equal(t, tt.mastered, tt.stats.HasMastered())
		})
	}
}

func TestStatsKey(t *testing.T) {
	assert.Equal(t, "Hanuman Chalisa-11", StatsKey("Hanuman Chalisa", 11))
	assert.Equal(t, "Hanuman Chalisa--3", StatsKey("Hanuman Chalisa", -3))
}
