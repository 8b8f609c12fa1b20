package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Env:       "local",
		Timezone:  "UTC+5:30",
		Storage:   Storage{Driver: DriverMemory},
		DB:        DB{MaxConnections: 20, MaxConnLifetime: 30 * time.Second},
		Cache:     Cache{Enabled: true, SizeMB: 8},
		Reminders: Reminders{Enabled: true, Schedule: "0 8 * * *"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_ENV", "")
	t.Setenv("TELEGRAM_API_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "token", cfg.TelegramAPIToken)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "data/progress.db", cfg.Storage.SQLitePath)
	assert.Equal(t, 20, cfg.DB.MaxConnections)
	assert.Equal(t, 30*time.Second, cfg.DB.MaxConnLifetime)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, "0 8 * * *", cfg.Reminders.Schedule)
	assert.Equal(t, time.Local, cfg.Location)
}

func TestLoad_FileAndEnvironment(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "config"), 0o755))
	yaml := "env: production\ntimezone: Asia/Kolkata\nstorage:\n  driver: redis\n  compress: true\ncache:\n  size_mb: 16\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(yaml), 0o600))
	t.Setenv("STORAGE_REDIS_ADDR", "redis:6380")
	t.Setenv("APP_ENV", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, DriverRedis, cfg.Storage.Driver)
	assert.Equal(t, "redis:6380", cfg.Storage.RedisAddr)
	assert.True(t, cfg.Storage.Compress)
	assert.Equal(t, 16, cfg.Cache.SizeMB)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("STORAGE_DRIVER=memory\n"), 0o600))
	t.Setenv("APP_ENV", "")
	// godotenv does not override variables that are already set.
	t.Setenv("STORAGE_DRIVER", "")
	require.NoError(t, os.Unsetenv("STORAGE_DRIVER"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		ok     bool
	}{
		{name: "valid", mutate: func(*Config) {}, ok: true},
		{name: "unknown driver", mutate: func(c *Config) { c.Storage.Driver = "mongo" }},
		{name: "postgres without url", mutate: func(c *Config) { c.Storage.Driver = DriverPostgres }},
		{name: "postgres with url", mutate: func(c *Config) {
			c.Storage.Driver = DriverPostgres
			c.DB.URL = "postgres://localhost/verses"
		}, ok: true},
		{name: "sqlite without path", mutate: func(c *Config) { c.Storage.Driver = DriverSQLite }},
		{name: "bad schedule", mutate: func(c *Config) { c.Reminders.Schedule = "every morning" }},
		{name: "bad schedule ignored when disabled", mutate: func(c *Config) {
			c.Reminders.Enabled = false
			c.Reminders.Schedule = "every morning"
		}, ok: true},
		{name: "bad timezone", mutate: func(c *Config) { c.Timezone = "Mars/Olympus" }},
		{name: "zero cache size", mutate: func(c *Config) { c.Cache.SizeMB = 0 }},
		{name: "zero cache size ignored when disabled", mutate: func(c *Config) {
			c.Cache.Enabled = false
			c.Cache.SizeMB = 0
		}, ok: true},
		{name: "zero max connections", mutate: func(c *Config) { c.DB.MaxConnections = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.ok {
				require.NoError(t, err)
				assert.NotNil(t, cfg.Location)
				return
			}
			assert.Error(t, err)
		})
	}
}

func TestDSN(t *testing.T) {
	_, err := DB{}.DSN()
	assert.ErrorIs(t, err, ErrMissingEnvironmentVariables)

	dsn, err := DB{URL: "postgres://x"}.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://x", dsn)
}
