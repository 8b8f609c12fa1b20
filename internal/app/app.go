// Package app wires configuration, storage and services together for the
// bot and the command line tool.
package app

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/config"
	"github.com/aliskhannn/chalisa-kids-bot/internal/infra/postgres"
	"github.com/aliskhannn/chalisa-kids-bot/internal/infra/redis"
	"github.com/aliskhannn/chalisa-kids-bot/internal/infra/sqlite"
	"github.com/aliskhannn/chalisa-kids-bot/internal/repository"
	"github.com/aliskhannn/chalisa-kids-bot/internal/service"
	"github.com/aliskhannn/chalisa-kids-bot/internal/storage"
)

// OpenStore opens the key-value backend selected by cfg. The returned
// close function releases it and is never nil.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (storage.Store, func(), error) {
	noop := func() {}

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		logger.Warn("using in-memory storage, learner state is lost on exit")
		return storage.NewMemoryStore(), noop, nil

	case config.DriverSQLite:
		kv, err := sqlite.Open(ctx, cfg.Storage.SQLitePath)
		if err != nil {
			return nil, noop, err
		}
		logger.Info("sqlite storage opened", zap.String("path", cfg.Storage.SQLitePath))
		return kv, func() {
			if err := kv.Close(); err != nil {
				logger.Warn("failed to close sqlite", zap.Error(err))
			}
		}, nil

	case config.DriverPostgres:
		dsn, err := cfg.DB.DSN()
		if err != nil {
			return nil, noop, err
		}
		pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
			MaxConns:        int32(cfg.DB.MaxConnections),
			MaxConnLifetime: cfg.DB.MaxConnLifetime,
		})
		if err != nil {
			return nil, noop, fmt.Errorf("postgres: %w", err)
		}
		if err := postgres.Migrate(ctx, postgres.NewTransactor(pool)); err != nil {
			pool.Close()
			return nil, noop, fmt.Errorf("postgres: %w", err)
		}
		logger.Info("postgres storage opened")
		return postgres.NewKVStore(pool), pool.Close, nil

	case config.DriverRedis:
		client, err := redis.NewClient(ctx, cfg.Storage.RedisAddr, cfg.Storage.RedisDB)
		if err != nil {
			return nil, noop, fmt.Errorf("redis: %w", err)
		}
		kv := redis.NewKVStore(client)
		logger.Info("redis storage opened", zap.String("addr", cfg.Storage.RedisAddr))
		return kv, func() {
			if err := kv.Close(); err != nil {
				logger.Warn("failed to close redis", zap.Error(err))
			}
		}, nil
	}

	return nil, noop, fmt.Errorf("%w: unknown storage driver %q", config.ErrInvalidConfig, cfg.Storage.Driver)
}

// Services are the application services shared by all chats.
type Services struct {
	Prayers   *service.PrayerService
	Answerer  *service.CachedAnswerer
	Daily     *service.DailyVerseService
	Learners  *service.LearnerRegistry
	Reminders *service.ReminderService
}

// NewServices loads the prayer content and builds the services over store.
func NewServices(ctx context.Context, cfg *config.Config, store storage.Store, logger *zap.Logger, recorder service.MetricsRecorder) (*Services, error) {
	prayerRepo, err := repository.NewPrayerRepository(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("load prayers: %w", err)
	}

	codec, err := storage.NewCodec(cfg.Storage.Compress)
	if err != nil {
		return nil, fmt.Errorf("codec: %w", err)
	}

	opts := []service.Option{
		service.WithLocation(cfg.Location),
		service.WithMetrics(recorder),
		service.WithLogger(logger),
	}

	daily := service.NewDailyVerseService(ctx, prayerRepo, repository.NewDailyVerseRepository(store, codec, logger), opts...)
	learners := service.NewLearnerRegistry(store, codec, opts...)

	logger.Info("services ready",
		zap.Int("prayers", len(prayerRepo.GetAll())),
		zap.String("timezone", cfg.Location.String()),
		zap.Bool("answer_cache", cfg.Cache.Enabled),
	)

	return &Services{
		Prayers:  service.NewPrayerService(prayerRepo, opts...),
		Answerer: service.NewCachedAnswerer(service.NewAnswerCache(cfg.Cache.Enabled, cfg.Cache.SizeMB), opts...),
		Daily:    daily,
		Learners: learners,
		Reminders: service.NewReminderService(ctx,
			repository.NewSubscriberRepository(store, codec, logger),
			daily, learners, cfg.Reminders.Schedule, opts...),
	}, nil
}
