package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
	"github.com/aliskhannn/chalisa-kids-bot/internal/storage"
)

// DailyVerseRepository persists the last selected verse of the day.
type DailyVerseRepository struct {
	blob blob
}

func NewDailyVerseRepository(store KeyValueStore, codec storage.Codec, logger *zap.Logger) *DailyVerseRepository {
	return &DailyVerseRepository{blob: blob{store: store, codec: codec, key: DailyVerseKey, logger: logger}}
}

// Load returns the stored selection, or nil when there is none.
func (r *DailyVerseRepository) Load(ctx context.Context) *entities.DailyVerse {
	var dv entities.DailyVerse
	if !r.blob.load(ctx, &dv) || dv.Date.IsZero() {
		return nil
	}
	return &dv
}

func (r *DailyVerseRepository) Save(ctx context.Context, dv *entities.DailyVerse) error {
	if err := r.blob.save(ctx, dv); err != nil {
		return fmt.Errorf("save daily verse: %w", err)
	}
	return nil
}
