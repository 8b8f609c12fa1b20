package telegram

import (
	"context"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/storage"
)

type Handler struct {
	bot             *tgbotapi.BotAPI
	logger          *zap.Logger
	prayerService   PrayerService
	answerer        Answerer
	dailyService    DailyVerseService
	reminderService ReminderService
	learners        LearnerRegistry
	quizStorage     QuizStorage
	reminderStorage *storage.ReminderStorage

	selected sync.Map // chat ID -> 1-based prayer index
}

func NewHandler(
	bot *tgbotapi.BotAPI,
	logger *zap.Logger,
	prayerService PrayerService,
	answerer Answerer,
	dailyService DailyVerseService,
	reminderService ReminderService,
	learners LearnerRegistry,
	quizStorage QuizStorage,
	reminderStorage *storage.ReminderStorage,
) *Handler {
	return &Handler{
		bot:             bot,
		logger:          logger,
		prayerService:   prayerService,
		answerer:        answerer,
		dailyService:    dailyService,
		reminderService: reminderService,
		learners:        learners,
		quizStorage:     quizStorage,
		reminderStorage: reminderStorage,
	}
}

func (h *Handler) Run(ctx context.Context) error {
	h.logger.Info("telegram handler started")
	defer h.logger.Info("telegram handler stopped")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := h.bot.GetUpdatesChan(u)
	defer h.bot.StopReceivingUpdates()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case update := <-updates:
			h.handleUpdate(ctx, update)
		}
	}
}

func (h *Handler) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		h.logger.Debug("callback received",
			zap.Int64("user_id", update.CallbackQuery.From.ID),
			zap.String("data", update.CallbackQuery.Data),
		)
		h.handleCallback(ctx, update.CallbackQuery)
		return
	}

	if update.Message == nil || update.Message.From == nil {
		h.logger.Debug("update without message and callback")
		return
	}

	h.logger.Debug("update received",
		zap.Int64("chat_id", update.Message.Chat.ID),
		zap.String("text", update.Message.Text),
	)

	chatID := update.Message.Chat.ID
	userID := update.Message.From.ID

	if !update.Message.IsCommand() {
		if update.Message.Text != "" {
			_ = h.withErrorHandling(h.handleAsk(update.Message.Text))(ctx, chatID)
		}
		return
	}

	args := update.Message.CommandArguments()

	var fn HandlerFunc
	switch update.Message.Command() {
	case "start":
		fn = h.handleStart()
	case "help":
		fn = h.handleHelp()
	case "prayers":
		fn = h.handlePrayers()
	case "prayer":
		fn = h.handlePrayer(args)
	case "verse":
		fn = h.handleVerse(args)
	case "ask":
		fn = h.handleAsk(args)
	case "quiz":
		fn = h.handleQuiz(userID)
	case "daily":
		fn = h.handleDaily()
	case "progress":
		fn = h.handleProgress(userID)
	case "remind":
		fn = h.handleRemind()
	default:
		fn = h.handleUnknown()
	}

	_ = h.withErrorHandling(fn)(ctx, chatID)
}

func (h *Handler) sendError(chatID int64, text string) {
	_ = h.send(newPlainMessage(chatID, text))
}

func (h *Handler) send(c tgbotapi.Chattable) error {
	if _, err := h.bot.Send(c); err != nil {
		h.logger.Error("failed to send telegram message", zap.Error(err))
		return err
	}
	return nil
}
