package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
	"github.com/aliskhannn/chalisa-kids-bot/internal/storage"
)

// ProgressRepository persists the daily verse progress of one learner.
type ProgressRepository struct {
	blob blob
}

func NewProgressRepository(store KeyValueStore, codec storage.Codec, logger *zap.Logger) *ProgressRepository {
	return &ProgressRepository{blob: blob{store: store, codec: codec, key: ProgressKey, logger: logger}}
}

// Load returns the stored progress, or a fresh record.
func (r *ProgressRepository) Load(ctx context.Context) *entities.DailyVerseProgress {
	progress := entities.NewDailyVerseProgress()
	if !r.blob.load(ctx, progress) {
		return entities.NewDailyVerseProgress()
	}

	if progress.CompletedVerses == nil {
		progress.CompletedVerses = make(entities.VerseKeySet)
	}

	return progress
}

func (r *ProgressRepository) Save(ctx context.Context, progress *entities.DailyVerseProgress) error {
	if err := r.blob.save(ctx, progress); err != nil {
		return fmt.Errorf("save progress: %w", err)
	}
	return nil
}
