package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

type callbackFunc func(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (toast string, err error)

func (h *Handler) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	if cb.Message == nil {
		h.answerCallback(cb.ID, "")
		return
	}

	cd := decodeCallback(cb.Data)

	var fn callbackFunc
	switch cd.Action {
	case actionPrayer:
		fn = h.prayerCallback
	case actionVerse:
		fn = h.verseCallback
	case actionLearn:
		fn = h.learnCallback
	case actionQuiz:
		fn = h.quizCallback
	case actionDaily:
		fn = h.dailyCallback
	case actionRemind:
		fn = h.remindCallback
	default:
		h.logger.Warn("unknown callback", zap.String("data", cb.Data))
		h.answerCallback(cb.ID, "")
		return
	}

	toast, err := fn(ctx, cb, cd)
	if err != nil {
		h.logger.Error("callback error",
			zap.Int64("chat_id", cb.Message.Chat.ID),
			zap.String("data", cb.Data),
			zap.Error(err),
		)
		toast = msgInternalError
	}

	// Remove the user's "clock".
	h.answerCallback(cb.ID, toast)
}

func (h *Handler) answerCallback(id, text string) {
	if _, err := h.bot.Request(tgbotapi.NewCallback(id, text)); err != nil {
		h.logger.Debug("callback answer error", zap.Error(err))
	}
}

// edit replaces the text and keyboard of the callback message.
func (h *Handler) edit(cb *tgbotapi.CallbackQuery, text string, kb tgbotapi.InlineKeyboardMarkup) error {
	e := newEdit(cb.Message.Chat.ID, cb.Message.MessageID, text)
	e.ReplyMarkup = &kb
	return h.send(e)
}

func (h *Handler) prayerCallback(_ context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (string, error) {
	n, ok := cd.intParam(0)
	if !ok {
		return "", fmt.Errorf("invalid prayer callback %q", cd.Raw)
	}

	text, kb, err := h.renderPrayer(cb.Message.Chat.ID, n)
	if err != nil {
		return "", err
	}
	return "", h.edit(cb, text, kb)
}

func (h *Handler) verseCallback(_ context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (string, error) {
	idx, ok1 := cd.intParam(0)
	pos, ok2 := cd.intParam(1)
	if !ok1 || !ok2 || pos < 0 {
		return "", fmt.Errorf("invalid verse callback %q", cd.Raw)
	}

	prayer, err := h.prayerService.GetByIndex(idx)
	if err != nil {
		return "", err
	}
	h.selectPrayer(cb.Message.Chat.ID, idx)

	text, kb := h.renderVerse(idx, prayer, pos)
	return "", h.edit(cb, text, kb)
}

// learnCallback credits a verse completion to the user who pressed the button.
func (h *Handler) learnCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (string, error) {
	idx, ok1 := cd.intParam(0)
	number, ok2 := cd.intParam(1)
	if !ok1 || !ok2 {
		return "", fmt.Errorf("invalid learn callback %q", cd.Raw)
	}

	prayer, err := h.prayerService.GetByIndex(idx)
	if err != nil {
		return "", err
	}
	_, verse, err := h.prayerService.GetVerse(prayer.Title, number)
	if err != nil {
		return "", err
	}

	progress := h.learners.Get(ctx, cb.From.ID).Progress
	firstTime, err := progress.MarkAsCompleted(ctx, verse, prayer.Title)
	if err != nil {
		// The completion is kept in memory and saved with the next one.
		h.logger.Warn("progress not saved", zap.Int64("user_id", cb.From.ID), zap.Error(err))
	}

	streak := progress.Progress().CurrentStreak
	if firstTime {
		return fmt.Sprintf("🎉 Verse learned! Streak: %d", streak), nil
	}
	return fmt.Sprintf("You already know this verse. Streak: %d", streak), nil
}

func (h *Handler) dailyCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, _ callbackData) (string, error) {
	return "", h.handleDaily()(ctx, cb.Message.Chat.ID)
}

func (h *Handler) remindCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (string, error) {
	if len(cd.Params) == 0 || cd.Params[0] != remindToggle {
		return "", fmt.Errorf("invalid remind callback %q", cd.Raw)
	}

	chatID := cb.Message.Chat.ID
	subscribed, err := h.reminderService.Toggle(ctx, chatID, cb.From.ID)
	if err != nil {
		return "", err
	}
	if !subscribed {
		h.reminderStorage.Forget(chatID)
	}

	return "", h.edit(cb, formatReminderStatus(subscribed), buildRemindKeyboard(subscribed))
}
