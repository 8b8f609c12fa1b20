package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/aliskhannn/chalisa-kids-bot/internal/config"
	"github.com/aliskhannn/chalisa-kids-bot/internal/metrics"
	"github.com/aliskhannn/chalisa-kids-bot/internal/storage"
)

func testConfig(driver string) *config.Config {
	return &config.Config{
		Env:      "test",
		Storage:  config.Storage{Driver: driver},
		Cache:    config.Cache{Enabled: true, SizeMB: 1},
		Location: time.UTC,
		Reminders: config.Reminders{
			Enabled:  true,
			Schedule: "0 8 * * *",
		},
	}
}

func TestOpenStore_Memory(t *testing.T) {
	store, closeFn, err := OpenStore(context.Background(), testConfig(config.DriverMemory), zap.NewNop())
	require.NoError(t, err)
	defer closeFn()

	assert.IsType(t, &storage.MemoryStore{}, store)
}

func TestOpenStore_SQLite(t *testing.T) {
	cfg := testConfig(config.DriverSQLite)
	cfg.Storage.SQLitePath = filepath.Join(t.TempDir(), "state", "progress.db")

	store, closeFn, err := OpenStore(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	defer closeFn()

	ctx := context.Background()
	require.NoError(t, store.Set(ctx, "k", []byte("v")))
	got, err := store.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), got)
}

func TestOpenStore_UnknownDriver(t *testing.T) {
	store, closeFn, err := OpenStore(context.Background(), testConfig("etcd"), zap.NewNop())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.Nil(t, store)
	assert.NotNil(t, closeFn)
}

func TestNewServices(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(config.DriverMemory)

	svc, err := NewServices(ctx, cfg, storage.NewMemoryStore(), zap.NewNop(), metrics.Noop{})
	require.NoError(t, err)

	prayers := svc.Prayers.GetAll()
	require.Len(t, prayers, 4)

	chalisa, err := svc.Prayers.GetByTitle("Hanuman Chalisa")
	require.NoError(t, err)
	assert.Contains(t, svc.Answerer.Answer("Who wrote this?", chalisa), "Tulsidas")

	dv, err := svc.Daily.Today(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, dv.PrayerTitle)

	learner := svc.Learners.Get(ctx, 42)
	assert.True(t, learner.Quiz.HasQuestions(chalisa.Title))

	on, err := svc.Reminders.Toggle(ctx, 42, 42)
	require.NoError(t, err)
	assert.True(t, on)
}

func TestNewServices_BadContentPath(t *testing.T) {
	cfg := testConfig(config.DriverMemory)
	cfg.ContentPath = filepath.Join(t.TempDir(), "missing.json")

	_, err := NewServices(context.Background(), cfg, storage.NewMemoryStore(), zap.NewNop(), metrics.Noop{})
	assert.Error(t, err)
}
