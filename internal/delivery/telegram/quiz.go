package telegram

import (
	"context"
	"errors"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// startQuiz sends the first question of a new quiz on prayer. A running
// quiz of the chat is replaced.
func (h *Handler) startQuiz(ctx context.Context, chatID, userID int64, prayerIndex int, prayer *entities.Prayer) error {
	quiz := h.learners.Get(ctx, userID).Quiz
	if !quiz.HasQuestions(prayer.Title) {
		return h.send(newPlainMessage(chatID, msgNoQuiz))
	}

	session := quiz.StartQuiz(prayer)
	q, err := quiz.Present(session)
	if err != nil {
		return err
	}
	if q == nil {
		return h.send(newPlainMessage(chatID, msgNoQuiz))
	}

	h.selectPrayer(chatID, prayerIndex)
	h.quizStorage.Store(chatID, session)

	h.logger.Debug("quiz started",
		zap.Int64("chat_id", chatID),
		zap.String("prayer", prayer.Title),
		zap.Int("questions", session.TotalQuestions()),
	)

	msg := newMessage(chatID, formatQuizQuestion(session, q))
	msg.ReplyMarkup = buildQuizAnswerKeyboard(q)
	return h.send(msg)
}

func (h *Handler) quizCallback(ctx context.Context, cb *tgbotapi.CallbackQuery, cd callbackData) (string, error) {
	if len(cd.Params) == 0 {
		return "", fmt.Errorf("invalid quiz callback %q", cd.Raw)
	}

	chatID := cb.Message.Chat.ID

	switch cd.Params[0] {
	case quizStart:
		idx, ok := cd.intParam(1)
		if !ok {
			return "", fmt.Errorf("invalid quiz callback %q", cd.Raw)
		}
		prayer, err := h.prayerService.GetByIndex(idx)
		if err != nil {
			return "", err
		}
		return "", h.startQuiz(ctx, chatID, cb.From.ID, idx, prayer)

	case quizAnswer:
		option, ok := cd.intParam(1)
		if !ok {
			return "", fmt.Errorf("invalid quiz callback %q", cd.Raw)
		}
		return h.quizAnswer(ctx, cb, option)

	case quizNext:
		return h.quizNext(ctx, cb)

	case quizStop:
		session, ok := h.quizStorage.Get(chatID)
		if !ok {
			return msgQuizExpired, nil
		}
		h.quizStorage.Delete(chatID)
		return "", h.edit(cb, formatQuizResult(session), buildQuizResultKeyboard(h.prayerIndex(session.PrayerTitle)))
	}

	return "", fmt.Errorf("invalid quiz callback %q", cd.Raw)
}

func (h *Handler) quizAnswer(ctx context.Context, cb *tgbotapi.CallbackQuery, option int) (string, error) {
	chatID := cb.Message.Chat.ID

	session, ok := h.quizStorage.Get(chatID)
	if !ok || session.State != entities.QuizPresented {
		return msgQuizExpired, nil
	}
	q := session.Question

	prayer, err := h.prayerService.GetByTitle(session.PrayerTitle)
	if err != nil {
		return "", err
	}

	correct, err := h.learners.Get(ctx, cb.From.ID).Quiz.Answer(ctx, session, prayer, option)
	switch {
	case errors.Is(err, entities.ErrInvalidTransition), errors.Is(err, entities.ErrInvalidOption):
		return msgQuizExpired, nil
	case err != nil:
		// The answer counts; only saving the stats failed.
		h.logger.Warn("quiz stats not saved", zap.Int64("user_id", cb.From.ID), zap.Error(err))
	}

	last := session.Position == session.TotalQuestions()-1
	text := formatQuizQuestion(session, q) + "\n\n" + formatAnswerFeedback(correct, q)
	return "", h.edit(cb, text, buildQuizFeedbackKeyboard(last))
}

func (h *Handler) quizNext(ctx context.Context, cb *tgbotapi.CallbackQuery) (string, error) {
	chatID := cb.Message.Chat.ID

	session, ok := h.quizStorage.Get(chatID)
	if !ok {
		return msgQuizExpired, nil
	}
	quiz := h.learners.Get(ctx, cb.From.ID).Quiz

	more, err := quiz.Next(session)
	if err != nil {
		return msgQuizExpired, nil
	}

	var q *entities.QuizQuestion
	if more {
		if q, err = quiz.Present(session); err != nil {
			return "", err
		}
	}

	if q == nil {
		h.quizStorage.Delete(chatID)
		return "", h.edit(cb, formatQuizResult(session), buildQuizResultKeyboard(h.prayerIndex(session.PrayerTitle)))
	}

	return "", h.edit(cb, formatQuizQuestion(session, q), buildQuizAnswerKeyboard(q))
}
