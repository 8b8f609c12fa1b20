package telegram

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

// defaultPrayerIndex is the prayer a chat starts with.
const defaultPrayerIndex = 1

// selectedPrayer returns the prayer the chat is currently reading.
func (h *Handler) selectedPrayer(chatID int64) (int, *entities.Prayer, error) {
	idx := defaultPrayerIndex
	if v, ok := h.selected.Load(chatID); ok {
		idx = v.(int)
	}
	p, err := h.prayerService.GetByIndex(idx)
	if err != nil {
		return 0, nil, err
	}
	return idx, p, nil
}

func (h *Handler) selectPrayer(chatID int64, idx int) {
	h.selected.Store(chatID, idx)
}

// prayerIndex returns the 1-based index of the prayer titled title, or 0.
func (h *Handler) prayerIndex(title string) int {
	for i, p := range h.prayerService.GetAll() {
		if p.Title == title {
			return i + 1
		}
	}
	return 0
}

// versePosition returns the position of a verse number in reading order.
func versePosition(p *entities.Prayer, number int) int {
	for i, v := range p.AllVerses() {
		if v.Number == number {
			return i
		}
	}
	return -1
}

func (h *Handler) handleStart() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		msg := newMessage(chatID, welcomeMarkdownV2())
		msg.ReplyMarkup = buildPrayersKeyboard(h.prayerService.GetAll())
		return h.send(msg)
	}
}

func (h *Handler) handleHelp() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newMessage(chatID, helpMarkdownV2()))
	}
}

func (h *Handler) handleUnknown() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		return h.send(newPlainMessage(chatID, msgUnknownCommand))
	}
}

func (h *Handler) handlePrayers() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		prayers := h.prayerService.GetAll()
		msg := newMessage(chatID, formatPrayerList(prayers))
		msg.ReplyMarkup = buildPrayersKeyboard(prayers)
		return h.send(msg)
	}
}

// handlePrayer opens a prayer by its number in /prayers and makes it the
// current prayer of the chat.
func (h *Handler) handlePrayer(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		n, err := strconv.Atoi(strings.TrimSpace(args))
		if err != nil {
			return h.send(newPlainMessage(chatID, msgUsePrayer))
		}

		text, kb, err := h.renderPrayer(chatID, n)
		if err != nil {
			return err
		}

		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

// handleVerse shows a verse of the current prayer. Negative numbers
// address the dohas.
func (h *Handler) handleVerse(args string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		n, err := strconv.Atoi(strings.TrimSpace(args))
		if err != nil {
			return h.send(newPlainMessage(chatID, msgUseVerse))
		}

		idx, prayer, err := h.selectedPrayer(chatID)
		if err != nil {
			return err
		}
		if _, _, err = h.prayerService.GetVerse(prayer.Title, n); err != nil {
			return err
		}

		text, kb := h.renderVerse(idx, prayer, versePosition(prayer, n))
		msg := newMessage(chatID, text)
		msg.ReplyMarkup = kb
		return h.send(msg)
	}
}

// handleAsk answers a free-form question about the current prayer.
func (h *Handler) handleAsk(question string) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		question = strings.TrimSpace(question)
		if question == "" {
			return h.send(newPlainMessage(chatID, msgUseAsk))
		}

		_, prayer, err := h.selectedPrayer(chatID)
		if err != nil {
			return err
		}

		return h.send(newPlainMessage(chatID, h.answerer.Answer(question, prayer)))
	}
}

func (h *Handler) handleQuiz(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		idx, prayer, err := h.selectedPrayer(chatID)
		if err != nil {
			return err
		}
		return h.startQuiz(ctx, chatID, userID, idx, prayer)
	}
}

func (h *Handler) handleDaily() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		dv, err := h.dailyService.Today(ctx)
		if err != nil {
			h.logger.Warn("daily verse unavailable", zap.Error(err))
			return h.send(newPlainMessage(chatID, msgDailyUnavailable))
		}

		msg := newMessage(chatID, formatDailyVerse(dv, h.prayerService.AlignVerse(dv.Verse)))
		if idx := h.prayerIndex(dv.PrayerTitle); idx > 0 {
			msg.ReplyMarkup = buildLearnKeyboard(idx, dv.Verse.Number)
		}
		return h.send(msg)
	}
}

func (h *Handler) handleProgress(userID int64) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		learner := h.learners.Get(ctx, userID)

		total := 0
		for _, p := range h.prayerService.GetAll() {
			total += p.TotalVerses()
		}

		text := formatProgress(learner.Progress.Progress(), learner.Quiz.AllStats(), total)
		return h.send(newMessage(chatID, text))
	}
}

func (h *Handler) handleRemind() HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		subscribed := h.reminderService.IsSubscribed(chatID)
		msg := newMessage(chatID, formatReminderStatus(subscribed))
		msg.ReplyMarkup = buildRemindKeyboard(subscribed)
		return h.send(msg)
	}
}
