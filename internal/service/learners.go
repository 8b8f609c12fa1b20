package service

import (
	"context"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/repository"
	"github.com/aliskhannn/chalisa-kids-bot/internal/storage"
)

// Learner holds the stateful services of one user.
type Learner struct {
	UserID   int64
	Quiz     *QuizService
	Progress *ProgressService
}

// LearnerRegistry lazily creates one Learner per user. Each learner's state
// lives under its own key prefix of the shared store.
type LearnerRegistry struct {
	mu       sync.Mutex
	store    repository.KeyValueStore
	codec    storage.Codec
	learners map[int64]*Learner
	opts     []Option
	logger   *zap.Logger
}

func NewLearnerRegistry(store repository.KeyValueStore, codec storage.Codec, opts ...Option) *LearnerRegistry {
	return &LearnerRegistry{
		store:    store,
		codec:    codec,
		learners: make(map[int64]*Learner),
		opts:     opts,
		logger:   newOptions(opts).logger,
	}
}

// Get returns the learner of userID, loading its state on first use.
func (r *LearnerRegistry) Get(ctx context.Context, userID int64) *Learner {
	r.mu.Lock()
	defer r.mu.Unlock()

	if l, ok := r.learners[userID]; ok {
		return l
	}

	store := storage.WithPrefix(r.store, storage.UserPrefix(userID))
	logger := r.logger.With(zap.Int64("user_id", userID))

	opts := append(slices.Clone(r.opts), WithLogger(logger))

	l := &Learner{
		UserID:   userID,
		Quiz:     NewQuizService(ctx, repository.NewQuizStatsRepository(store, r.codec, logger), opts...),
		Progress: NewProgressService(ctx, repository.NewProgressRepository(store, r.codec, logger), opts...),
	}
	r.learners[userID] = l

	return l
}

// Len returns the number of loaded learners.
func (r *LearnerRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.learners)
}
