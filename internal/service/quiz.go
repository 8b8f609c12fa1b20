package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// QuizService serves quiz questions and keeps the answer statistics of one
// learner. Stats are loaded once and saved after every answer.
type QuizService struct {
	mu    sync.Mutex
	repo  QuizStatsRepository
	stats map[string]*entities.QuizStats
	opts  options
}

func NewQuizService(ctx context.Context, repo QuizStatsRepository, opts ...Option) *QuizService {
	return &QuizService{
		repo:  repo,
		stats: repo.Load(ctx),
		opts:  newOptions(opts),
	}
}

// GetQuestion returns the question of a verse with shuffled options, or nil
// when the prayer family has no question for it.
func (s *QuizService) GetQuestion(verseNumber int, prayerTitle string) *entities.QuizQuestion {
	base, ok := lookupQuestion(FamilyForTitle(prayerTitle), verseNumber)
	if !ok {
		return nil
	}
	q := shuffleOptions(base, s.opts.shuffle)
	return &q
}

// HasQuestions reports whether a quiz can be offered for the prayer.
func (s *QuizService) HasQuestions(prayerTitle string) bool {
	return FamilyForTitle(prayerTitle) != FamilyNone
}

// RecordAnswer updates the stats of a verse and writes all stats through.
// The in-memory stats are updated even when saving fails.
func (s *QuizService) RecordAnswer(ctx context.Context, verse entities.Verse, prayerTitle string, isCorrect bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := entities.StatsKey(prayerTitle, verse.Number)
	stats, ok := s.stats[key]
	if !ok {
		stats = &entities.QuizStats{}
		s.stats[key] = stats
	}
	stats.Record(isCorrect, s.opts.now())
	s.opts.metrics.IncQuizAnswers(isCorrect)

	if err := s.repo.Save(ctx, s.stats); err != nil {
		s.opts.logger.Error("failed to save quiz stats", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("record answer: %w", err)
	}

	return nil
}

// GetStats returns the stats of a verse, zero when never answered.
func (s *QuizService) GetStats(verse entities.Verse, prayerTitle string) entities.QuizStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stats, ok := s.stats[entities.StatsKey(prayerTitle, verse.Number)]; ok {
		return *stats
	}
	return entities.QuizStats{}
}

// HasAnsweredCorrectly reports whether the last answer for the verse was correct.
func (s *QuizService) HasAnsweredCorrectly(verse entities.Verse, prayerTitle string) bool {
	return s.GetStats(verse, prayerTitle).CurrentStreak > 0
}

// AllStats returns a copy of every stats record keyed by "{title}-{verse}".
func (s *QuizService) AllStats() map[string]entities.QuizStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]entities.QuizStats, len(s.stats))
	for k, v := range s.stats {
		out[k] = *v
	}
	return out
}

// StartQuiz creates a session over the verses of prayer that have a question.
func (s *QuizService) StartQuiz(prayer *entities.Prayer) *entities.QuizSession {
	family := FamilyForTitle(prayer.Title)

	var numbers []int
	seen := make(map[int]struct{})
	for _, v := range prayer.AllVerses() {
		if _, dup := seen[v.Number]; dup {
			continue
		}
		if _, ok := lookupQuestion(family, v.Number); ok {
			numbers = append(numbers, v.Number)
			seen[v.Number] = struct{}{}
		}
	}

	return entities.NewQuizSession(prayer.Title, numbers, s.opts.now())
}

// Present shows the question of the current position, skipping verses
// without one. A question already presented is returned again. It returns
// nil once the session is finished.
func (s *QuizService) Present(session *entities.QuizSession) (*entities.QuizQuestion, error) {
	if session.State == entities.QuizPresented {
		return session.Question, nil
	}

	for !session.IsFinished() {
		q := s.GetQuestion(session.CurrentVerse(), session.PrayerTitle)
		if q == nil {
			if _, err := session.Skip(s.opts.now()); err != nil {
				return nil, err
			}
			continue
		}
		if err := session.Present(q); err != nil {
			return nil, err
		}
		return q, nil
	}
	return nil, nil
}

// Answer checks the selected option and records the result.
// A save failure is returned after the session has advanced to answered.
func (s *QuizService) Answer(ctx context.Context, session *entities.QuizSession, prayer *entities.Prayer, selected int) (bool, error) {
	correct, err := session.Answer(selected)
	if err != nil {
		return false, err
	}

	verse, ok := prayer.VerseByNumber(session.CurrentVerse())
	if !ok {
		verse = entities.Verse{Number: session.CurrentVerse()}
	}

	return correct, s.RecordAnswer(ctx, verse, prayer.Title, correct)
}

// Next advances the session. It reports false when the quiz is over.
func (s *QuizService) Next(session *entities.QuizSession) (bool, error) {
	return session.Next(s.opts.now())
}
