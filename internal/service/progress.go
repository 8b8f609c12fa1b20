package service

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// ProgressService tracks the daily verse streak of one learner.
type ProgressService struct {
	mu       sync.Mutex
	repo     ProgressRepository
	progress *entities.DailyVerseProgress
	opts     options
}

func NewProgressService(ctx context.Context, repo ProgressRepository, opts ...Option) *ProgressService {
	return &ProgressService{
		repo:     repo,
		progress: repo.Load(ctx),
		opts:     newOptions(opts),
	}
}

// MarkAsCompleted credits a verse completion and writes the progress through.
// It reports whether the verse was completed for the first time. A repeat
// completion on the same day changes nothing and is not saved.
func (s *ProgressService) MarkAsCompleted(ctx context.Context, verse entities.Verse, prayerTitle string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.opts.now()
	if s.progress.HasCompletedToday(now, s.opts.loc) && s.progress.CompletedVerses.Has(entities.StatsKey(prayerTitle, verse.Number)) {
		return false, nil
	}

	firstTime := s.progress.MarkAsCompleted(verse, prayerTitle, now, s.opts.loc)
	s.opts.metrics.IncVersesCompleted(firstTime)

	if err := s.repo.Save(ctx, s.progress); err != nil {
		s.opts.logger.Error("failed to save progress",
			zap.String("prayer", prayerTitle),
			zap.Int("verse", verse.Number),
			zap.Error(err),
		)
		return firstTime, fmt.Errorf("mark as completed: %w", err)
	}

	return firstTime, nil
}

// HasCompletedToday reports whether a verse was completed on the current day.
func (s *ProgressService) HasCompletedToday() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.progress.HasCompletedToday(s.opts.now(), s.opts.loc)
}

// Progress returns a copy of the current progress.
func (s *ProgressService) Progress() entities.DailyVerseProgress {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := *s.progress
	p.CompletedVerses = make(entities.VerseKeySet, len(s.progress.CompletedVerses))
	for k := range s.progress.CompletedVerses {
		p.CompletedVerses[k] = struct{}{}
	}
	if s.progress.LastCompletedDate != nil {
		last := *s.progress.LastCompletedDate
		p.LastCompletedDate = &last
	}
	return p
}
