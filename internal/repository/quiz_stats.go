package repository

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
	"github.com/aliskhannn/chalisa-kids-bot/internal/storage"
)

// QuizStatsRepository persists the quiz stats mapping of one learner.
type QuizStatsRepository struct {
	blob blob
}

// NewQuizStatsRepository creates a new QuizStatsRepository.
func NewQuizStatsRepository(store KeyValueStore, codec storage.Codec, logger *zap.Logger) *QuizStatsRepository {
	return &QuizStatsRepository{blob: blob{store: store, codec: codec, key: QuizStatsKey, logger: logger}}
}

// Load returns the stored mapping, or an empty one.
func (r *QuizStatsRepository) Load(ctx context.Context) map[string]*entities.QuizStats {
	var stats map[string]*entities.QuizStats
	if !r.blob.load(ctx, &stats) || stats == nil {
		return make(map[string]*entities.QuizStats)
	}

	for key, s := range stats {
		if s == nil {
			delete(stats, key)
		}
	}

	return stats
}

// Save replaces the stored mapping.
func (r *QuizStatsRepository) Save(ctx context.Context, stats map[string]*entities.QuizStats) error {
	if err := r.blob.save(ctx, stats); err != nil {
		return fmt.Errorf("save quiz stats: %w", err)
	}
	return nil
}
