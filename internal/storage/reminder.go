package storage

import (
	"sync"
	"time"
)

// ReminderMessage points at a daily verse reminder sent to a chat.
type ReminderMessage struct {
	MessageID int
	SentAt    time.Time
}

// ReminderStorage remembers the last reminder of each chat so that its
// keyboard can be removed when the next one is sent.
type ReminderStorage struct {
	mu       sync.Mutex
	messages map[int64]ReminderMessage
}

func NewReminderStorage() *ReminderStorage {
	return &ReminderStorage{
		messages: make(map[int64]ReminderMessage),
	}
}

// Swap stores the new reminder and returns the previous one, if any.
func (s *ReminderStorage) Swap(chatID int64, messageID int, sentAt time.Time) (prev ReminderMessage, hadPrev bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, hadPrev = s.messages[chatID]
	s.messages[chatID] = ReminderMessage{MessageID: messageID, SentAt: sentAt}

	return prev, hadPrev
}

// Forget drops the reminder of a chat.
func (s *ReminderStorage) Forget(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.messages, chatID)
}
