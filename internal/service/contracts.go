package service

import (
	"context"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

type PrayerRepository interface {
	GetAll() []*entities.Prayer
	GetByTitle(title string) (*entities.Prayer, error)
	GetByIndex(n int) (*entities.Prayer, error)
}

type QuizStatsRepository interface {
	Load(ctx context.Context) map[string]*entities.QuizStats
	Save(ctx context.Context, stats map[string]*entities.QuizStats) error
}

type ProgressRepository interface {
	Load(ctx context.Context) *entities.DailyVerseProgress
	Save(ctx context.Context, progress *entities.DailyVerseProgress) error
}

type DailyVerseRepository interface {
	Load(ctx context.Context) *entities.DailyVerse
	Save(ctx context.Context, dv *entities.DailyVerse) error
}

type SubscriberRepository interface {
	Load(ctx context.Context) map[int64]entities.ReminderSubscription
	Save(ctx context.Context, subs map[int64]entities.ReminderSubscription) error
}

// ReminderNotifier sends reminder notifications to chats.
type ReminderNotifier interface {
	SendReminder(chatID int64, payload entities.ReminderPayload) error
}

// MetricsRecorder receives service events.
type MetricsRecorder interface {
	IncAnswers(rule string)
	IncAnswerCacheHits()
	IncQuizAnswers(correct bool)
	IncVersesCompleted(firstTime bool)
	IncAlignments()
}
