package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

var ErrNoVerses = errors.New("no verses to choose from")

// SelectDailyVerse picks the verse of now's calendar day. Main verses of all
// prayers are numbered in content order and the day count since 2001-01-01
// walks through them, so every learner sees the same verse on the same day.
func SelectDailyVerse(prayers []*entities.Prayer, now time.Time, loc *time.Location) (entities.DailyVerse, bool) {
	total := 0
	for _, p := range prayers {
		total += len(p.Verses)
	}
	if total == 0 {
		return entities.DailyVerse{}, false
	}

	epoch := time.Date(2001, time.January, 1, 0, 0, 0, 0, loc)
	idx := entities.DaysBetween(epoch, now, loc) % total
	if idx < 0 {
		idx += total
	}

	for _, p := range prayers {
		if idx < len(p.Verses) {
			return entities.DailyVerse{
				Date:             entities.StartOfDay(now, loc),
				Verse:            p.Verses[idx],
				PrayerTitle:      p.Title,
				PrayerTitleHindi: p.TitleHindi,
			}, true
		}
		idx -= len(p.Verses)
	}

	return entities.DailyVerse{}, false
}

// DailyVerseService keeps the verse of the day, reusing the stored choice
// while it is still today.
type DailyVerseService struct {
	mu      sync.Mutex
	prayers PrayerRepository
	repo    DailyVerseRepository
	current *entities.DailyVerse
	opts    options
}

func NewDailyVerseService(ctx context.Context, prayers PrayerRepository, repo DailyVerseRepository, opts ...Option) *DailyVerseService {
	return &DailyVerseService{
		prayers: prayers,
		repo:    repo,
		current: repo.Load(ctx),
		opts:    newOptions(opts),
	}
}

// Today returns the verse of the current day. A failure to store a new
// selection is logged; the selection is still returned.
func (s *DailyVerseService) Today(ctx context.Context) (entities.DailyVerse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.opts.now()
	if s.current != nil {
		if s.current.IsToday(now, s.opts.loc) {
			return *s.current, nil
		}
		s.opts.logger.Debug("daily verse expired",
			zap.String("prayer", s.current.PrayerTitle),
			zap.Int("verse", s.current.Verse.Number),
			zap.Int("days_since", s.current.DaysSince(now, s.opts.loc)),
		)
	}

	dv, ok := SelectDailyVerse(s.prayers.GetAll(), now, s.opts.loc)
	if !ok {
		return entities.DailyVerse{}, ErrNoVerses
	}
	s.current = &dv

	if err := s.repo.Save(ctx, &dv); err != nil {
		s.opts.logger.Warn("failed to save daily verse", zap.Error(err))
	}

	return dv, nil
}
