package telegram

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// SendReminder sends the daily verse to a chat. The keyboard of the
// previous reminder in the chat is removed.
func (h *Handler) SendReminder(chatID int64, payload entities.ReminderPayload) error {
	verse := payload.Verse.Verse
	msg := newMessage(chatID, buildReminderNotification(payload, h.prayerService.AlignVerse(verse)))
	if idx := h.prayerIndex(payload.Verse.PrayerTitle); idx > 0 && !payload.DoneToday {
		msg.ReplyMarkup = buildLearnKeyboard(idx, verse.Number)
	}

	sent, err := h.bot.Send(msg)
	if err != nil {
		return fmt.Errorf("send reminder: %w", err)
	}

	prev, ok := h.reminderStorage.Swap(chatID, sent.MessageID, sent.Time())
	if ok && prev.MessageID != sent.MessageID {
		strip := tgbotapi.NewEditMessageReplyMarkup(chatID, prev.MessageID, tgbotapi.InlineKeyboardMarkup{
			InlineKeyboard: [][]tgbotapi.InlineKeyboardButton{},
		})
		if _, err := h.bot.Request(strip); err != nil {
			h.logger.Debug("failed to clear previous reminder keyboard",
				zap.Int64("chat_id", chatID),
				zap.Int("message_id", prev.MessageID),
				zap.Error(err),
			)
		}
	}

	return nil
}
