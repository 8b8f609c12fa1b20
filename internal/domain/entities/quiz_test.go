package entities

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func question(verse int) *QuizQuestion {
	return &QuizQuestion{
		VerseNumber:        verse,
		Question:           "Who wrote Hanuman Chalisa?",
		Options:            []string{"Valmiki", "Tulsidas", "Kabir", "Surdas"},
		CorrectAnswerIndex: 1,
	}
}

func TestQuizSession_FullWalk(t *testing.T) {
	now := time.Now()
	s := NewQuizSession("Hanuman Chalisa", []int{1, 40}, now)
	require.Equal(t, QuizNotStarted, s.State)
	assert.Equal(t, 1, s.CurrentVerse())

	require.NoError(t, s.Present(question(1)))
	correct, err := s.Answer(1)
	require.NoError(t, err)
	assert.True(t, correct)

	more, err := s.Next(now)
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, 40, s.CurrentVerse())

	require.NoError(t, s.Present(question(40)))
	correct, err = s.Answer(0)
	require.NoError(t, err)
	assert.False(t, correct)

	more, err = s.Next(now)
	require.NoError(t, err)
	assert.False(t, more)
	assert.True(t, s.IsFinished())
	assert.Equal(t, 1, s.CorrectAnswers)
	assert.Equal(t, 2, s.AnsweredQuestions)
	assert.NotNil(t, s.CompletedAt)
}

func TestQuizSession_InvalidTransitions(t *testing.T) {
	now := time.Now()
	s := NewQuizSession("Hanuman Aarti", []int{1}, now)

	_, err := s.Answer(0)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	_, err = s.Next(now)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	require.NoError(t, s.Present(question(1)))
	assert.ErrorIs(t, s.Present(question(1)), ErrInvalidTransition)

	_, err = s.Answer(7)
	assert.ErrorIs(t, err, ErrInvalidOption)
	assert.Equal(t, QuizPresented, s.State)
}

func TestQuizSession_EmptyStartsFinished(t *testing.T) {
	s := NewQuizSession("Unknown", nil, time.Now())
	assert.True(t, s.IsFinished())
	assert.ErrorIs(t, s.Present(question(1)), ErrInvalidTransition)
}

func TestQuizSession_Skip(t *testing.T) {
	now := time.Now()
	s := NewQuizSession("Hanuman Baan", []int{1, 8}, now)

	more, err := s.Skip(now)
	require.NoError(t, err)
	assert.True(t, more)
	assert.Equal(t, 8, s.CurrentVerse())
	assert.Equal(t, 0, s.AnsweredQuestions)
}
