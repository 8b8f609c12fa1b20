package entities

import "time"

// ReminderSubscription is a chat that receives the daily verse.
type ReminderSubscription struct {
	ChatID       int64     `json:"chatId"`
	UserID       int64     `json:"userId"`
	SubscribedAt time.Time `json:"subscribedAt"`
}

// ReminderPayload is the content of one daily reminder.
type ReminderPayload struct {
	Verse         DailyVerse
	CurrentStreak int  // learner streak before today's completion
	DoneToday     bool // learner already completed a verse today
}
