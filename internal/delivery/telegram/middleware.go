package telegram

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/repository"
	"github.com/aliskhannn/chalisa-kids-bot/internal/service"
)

type HandlerFunc func(ctx context.Context, chatID int64) error

// withErrorHandling logs a failed handler and tells the chat about it.
// Lookups of unknown prayers and verses get their own message.
func (h *Handler) withErrorHandling(fn HandlerFunc) HandlerFunc {
	return func(ctx context.Context, chatID int64) error {
		err := fn(ctx, chatID)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, repository.ErrPrayerNotFound):
			h.sendError(chatID, msgPrayerNotFound)
		case errors.Is(err, service.ErrVerseNotFound):
			h.sendError(chatID, msgVerseNotFound)
		default:
			h.logger.Error("handle error",
				zap.Int64("chat_id", chatID),
				zap.Error(err),
			)
			h.sendError(chatID, msgInternalError)
		}
		return nil
	}
}
