package entities

import (
	"errors"
	"time"
)

var (
	ErrInvalidTransition = errors.New("invalid quiz state transition")
	ErrInvalidOption     = errors.New("invalid option index")
)

// QuizQuestion is a multiple choice question about one verse.
type QuizQuestion struct {
	VerseNumber        int      `json:"verseNumber"`
	Question           string   `json:"question"`
	Options            []string `json:"options"` // exactly one is correct
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation,omitempty"`
}

// CorrectAnswer returns the text of the correct option.
func (q *QuizQuestion) CorrectAnswer() string {
	return q.Options[q.CorrectAnswerIndex]
}

// IsCorrect reports whether the option at index is the correct one.
func (q *QuizQuestion) IsCorrect(index int) (bool, error) {
	if index < 0 || index >= len(q.Options) {
		return false, ErrInvalidOption
	}
	return index == q.CorrectAnswerIndex, nil
}

// QuizState is the state of the current question of a session.
type QuizState string

const (
	QuizNotStarted QuizState = "not_started" // no question shown yet for the current position
	QuizPresented  QuizState = "presented"   // question shown, waiting for an answer
	QuizAnswered   QuizState = "answered"    // answer given, waiting for next
	QuizFinished   QuizState = "finished"    // no more questions
)

// QuizSession walks a learner through the questions of one prayer.
type QuizSession struct {
	PrayerTitle       string
	VerseNumbers      []int // verses that have a question, in prayer order
	Position          int   // index into VerseNumbers
	Question          *QuizQuestion
	State             QuizState
	CorrectAnswers    int
	AnsweredQuestions int
	LastSelected      int
	LastCorrect       bool
	StartedAt         time.Time
	CompletedAt       *time.Time
}

// NewQuizSession creates a session over the given verse numbers.
// A session without verses starts finished.
func NewQuizSession(prayerTitle string, verseNumbers []int, now time.Time) *QuizSession {
	s := &QuizSession{
		PrayerTitle:  prayerTitle,
		VerseNumbers: verseNumbers,
		State:        QuizNotStarted,
		StartedAt:    now,
	}
	if len(verseNumbers) == 0 {
		s.State = QuizFinished
		s.CompletedAt = &now
	}
	return s
}

// TotalQuestions returns the number of questions in the session.
func (s *QuizSession) TotalQuestions() int {
	return len(s.VerseNumbers)
}

// CurrentVerse returns the verse number of the current position.
func (s *QuizSession) CurrentVerse() int {
	if s.Position >= len(s.VerseNumbers) {
		return 0
	}
	return s.VerseNumbers[s.Position]
}

// Present shows q for the current position.
func (s *QuizSession) Present(q *QuizQuestion) error {
	if s.State != QuizNotStarted {
		return ErrInvalidTransition
	}
	s.Question = q
	s.State = QuizPresented
	return nil
}

// Answer checks the selected option of the presented question.
func (s *QuizSession) Answer(selected int) (bool, error) {
	if s.State != QuizPresented {
		return false, ErrInvalidTransition
	}
	correct, err := s.Question.IsCorrect(selected)
	if err != nil {
		return false, err
	}

	s.AnsweredQuestions++
	if correct {
		s.CorrectAnswers++
	}
	s.LastSelected = selected
	s.LastCorrect = correct
	s.State = QuizAnswered

	return correct, nil
}

// Next moves to the following question. It reports false and finishes the
// session when the last question was answered.
func (s *QuizSession) Next(now time.Time) (bool, error) {
	if s.State != QuizAnswered {
		return false, ErrInvalidTransition
	}

	s.Question = nil
	if s.Position+1 >= len(s.VerseNumbers) {
		s.State = QuizFinished
		s.CompletedAt = &now
		return false, nil
	}

	s.Position++
	s.State = QuizNotStarted
	return true, nil
}

// Skip drops the current position without an answer, used when a verse
// has no question. It behaves like Next from the not started state.
func (s *QuizSession) Skip(now time.Time) (bool, error) {
	if s.State != QuizNotStarted {
		return false, ErrInvalidTransition
	}
	s.State = QuizAnswered
	return s.Next(now)
}

// IsFinished reports whether the session is over.
func (s *QuizSession) IsFinished() bool {
	return s.State == QuizFinished
}
