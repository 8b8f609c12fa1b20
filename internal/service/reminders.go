package service

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

var ErrNotifierNotSet = errors.New("notifier not initialized")

// ReminderService broadcasts the daily verse to subscribed chats on a cron
// schedule.
type ReminderService struct {
	mu          sync.Mutex
	repo        SubscriberRepository
	subscribers map[int64]entities.ReminderSubscription
	daily       *DailyVerseService
	learners    *LearnerRegistry
	notifier    ReminderNotifier
	schedule    string
	opts        options
}

// NewReminderService creates a new reminder service. schedule is a standard
// 5-field cron spec evaluated in the configured location.
func NewReminderService(
	ctx context.Context,
	repo SubscriberRepository,
	daily *DailyVerseService,
	learners *LearnerRegistry,
	schedule string,
	opts ...Option,
) *ReminderService {
	return &ReminderService{
		repo:        repo,
		subscribers: repo.Load(ctx),
		daily:       daily,
		learners:    learners,
		schedule:    schedule,
		opts:        newOptions(opts),
	}
}

// SetNotifier sets the notifier (called after handler is created).
func (s *ReminderService) SetNotifier(notifier ReminderNotifier) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.notifier = notifier
}

// IsSubscribed reports whether chatID receives reminders.
func (s *ReminderService) IsSubscribed(chatID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.subscribers[chatID]
	return ok
}

// Toggle subscribes or unsubscribes a chat and reports the new state.
func (s *ReminderService) Toggle(ctx context.Context, chatID, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, subscribed := s.subscribers[chatID]
	if subscribed {
		delete(s.subscribers, chatID)
	} else {
		s.subscribers[chatID] = entities.ReminderSubscription{
			ChatID:       chatID,
			UserID:       userID,
			SubscribedAt: s.opts.now(),
		}
	}

	if err := s.repo.Save(ctx, s.subscribers); err != nil {
		return !subscribed, fmt.Errorf("toggle reminders: %w", err)
	}

	return !subscribed, nil
}

// Start runs the schedule until ctx is done.
func (s *ReminderService) Start(ctx context.Context) {
	s.opts.logger.Info("reminder service started", zap.String("schedule", s.schedule))

	c := cron.New(cron.WithLocation(s.opts.loc))

	_, err := c.AddFunc(s.schedule, func() {
		s.opts.logger.Info("cron triggered: sending daily verse reminders")
		if _, err := s.SendDailyReminders(ctx); err != nil {
			s.opts.logger.Error("failed to send daily reminders", zap.Error(err))
		}
	})
	if err != nil {
		s.opts.logger.Error("failed to add cron job", zap.Error(err))
		return
	}

	c.Start()
	s.opts.logger.Info("cron scheduler started")

	<-ctx.Done()

	<-c.Stop().Done()
	s.opts.logger.Info("reminder service stopped")
}

// SendDailyReminders sends today's verse to every subscriber and returns the
// number of chats reached.
func (s *ReminderService) SendDailyReminders(ctx context.Context) (int, error) {
	s.mu.Lock()
	notifier := s.notifier
	subs := make([]entities.ReminderSubscription, 0, len(s.subscribers))
	for _, sub := range s.subscribers {
		subs = append(subs, sub)
	}
	s.mu.Unlock()

	if notifier == nil {
		return 0, ErrNotifierNotSet
	}

	verse, err := s.daily.Today(ctx)
	if err != nil {
		return 0, fmt.Errorf("get daily verse: %w", err)
	}

	slices.SortFunc(subs, func(a, b entities.ReminderSubscription) int {
		return cmp.Compare(a.ChatID, b.ChatID)
	})

	const maxConcurrent = 10
	sem := make(chan struct{}, maxConcurrent)
	var wg sync.WaitGroup
	var sent atomic.Int64

	for _, sub := range subs {
		if ctx.Err() != nil {
			break
		}

		wg.Add(1)
		sem <- struct{}{} // Acquire

		go func() {
			defer wg.Done()
			defer func() { <-sem }() // Release

			payload := s.buildPayload(ctx, sub, verse)
			if err := notifier.SendReminder(sub.ChatID, payload); err != nil {
				s.opts.logger.Error("failed to send reminder",
					zap.Int64("chat_id", sub.ChatID),
					zap.Error(err))
				return
			}
			sent.Add(1)
		}()
	}

	wg.Wait()

	s.opts.logger.Info("reminders processed",
		zap.Int("subscribers", len(subs)),
		zap.Int64("total_sent", sent.Load()),
	)

	return int(sent.Load()), nil
}

func (s *ReminderService) buildPayload(ctx context.Context, sub entities.ReminderSubscription, verse entities.DailyVerse) entities.ReminderPayload {
	payload := entities.ReminderPayload{Verse: verse}
	if s.learners == nil || sub.UserID == 0 {
		return payload
	}

	learner := s.learners.Get(ctx, sub.UserID)
	progress := learner.Progress.Progress()
	payload.CurrentStreak = progress.CurrentStreak
	payload.DoneToday = learner.Progress.HasCompletedToday()

	return payload
}
