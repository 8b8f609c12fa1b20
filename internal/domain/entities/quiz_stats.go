package entities

import (
	"fmt"
	"time"
)

// QuizStats holds the answer history of one quiz question.
type QuizStats struct {
	TotalAttempts   int        `json:"totalAttempts"`
	CorrectAttempts int        `json:"correctAttempts"`
	CurrentStreak   int        `json:"currentStreak"` // consecutive correct answers
	BestStreak      int        `json:"bestStreak"`
	LastAttemptDate *time.Time `json:"lastAttemptDate,omitempty"`
}

// StatsKey builds the persistence key "{prayerTitle}-{verseNumber}".
func StatsKey(prayerTitle string, verseNumber int) string {
	return fmt.Sprintf("%s-%d", prayerTitle, verseNumber)
}

// Record applies one answer to the stats.
func (s *QuizStats) Record(isCorrect bool, now time.Time) {
	s.TotalAttempts++
	if isCorrect {
		s.CorrectAttempts++
		s.CurrentStreak++
		s.BestStreak = max(s.BestStreak, s.CurrentStreak)
	} else {
		s.CurrentStreak = 0
	}
	s.LastAttemptDate = &now
}

// SuccessRate returns the share of correct answers in percent.
func (s QuizStats) SuccessRate() float64 {
	if s.TotalAttempts == 0 {
		return 0
	}
	return float64(s.CorrectAttempts) / float64(s.TotalAttempts) * 100
}

// HasMastered is true after three correct answers in a row, or with at
// least 80% accuracy over five or more attempts.
func (s QuizStats) HasMastered() bool {
	return s.CurrentStreak >= 3 || (s.SuccessRate() >= 80 && s.TotalAttempts >= 5)
}
