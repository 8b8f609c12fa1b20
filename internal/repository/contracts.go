package repository

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/storage"
)

// Fixed keys of the learner state blobs.
const (
	QuizStatsKey   = "quizStats"
	ProgressKey    = "dailyVerseProgress"
	DailyVerseKey  = "dailyVerse"
	SubscribersKey = "reminders:subscribers"
)

// KeyValueStore is the persistence collaborator of the state repositories.
type KeyValueStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}

// blob reads and writes one codec-encoded value under a fixed key.
type blob struct {
	store  KeyValueStore
	codec  storage.Codec
	key    string
	logger *zap.Logger
}

// load decodes the stored value into v. It reports false when the key is
// missing or the blob cannot be read; v must then be treated as empty.
func (b blob) load(ctx context.Context, v any) bool {
	data, err := b.store.Get(ctx, b.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			b.logger.Debug("no stored state, starting empty", zap.String("key", b.key))
		} else {
			b.logger.Warn("failed to read stored state, starting empty", zap.String("key", b.key), zap.Error(err))
		}
		return false
	}

	if err := b.codec.Unmarshal(data, v); err != nil {
		b.logger.Warn("corrupt stored state, starting empty", zap.String("key", b.key), zap.Error(err))
		return false
	}

	return true
}

func (b blob) save(ctx context.Context, v any) error {
	data, err := b.codec.Marshal(v)
	if err != nil {
		return err
	}
	return b.store.Set(ctx, b.key, data)
}
