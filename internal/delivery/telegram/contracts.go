package telegram

import (
	"context"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
	"github.com/aliskhannn/chalisa-kids-bot/internal/service"
)

type PrayerService interface {
	GetAll() []*entities.Prayer
	GetByIndex(n int) (*entities.Prayer, error)
	GetByTitle(title string) (*entities.Prayer, error)
	GetVerse(title string, n int) (*entities.Prayer, entities.Verse, error)
	AlignVerse(verse entities.Verse) [][]entities.WordPair
}

type Answerer interface {
	Answer(question string, prayer *entities.Prayer) string
}

type DailyVerseService interface {
	Today(ctx context.Context) (entities.DailyVerse, error)
}

type ReminderService interface {
	IsSubscribed(chatID int64) bool
	Toggle(ctx context.Context, chatID, userID int64) (bool, error)
}

type LearnerRegistry interface {
	Get(ctx context.Context, userID int64) *service.Learner
}

type QuizStorage interface {
	Store(chatID int64, session *entities.QuizSession)
	Get(chatID int64) (*entities.QuizSession, bool)
	Delete(chatID int64)
}
