package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/gookit/validate"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"

	"github.com/aliskhannn/chalisa-kids-bot/internal/domain/entities"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid configuration")
)

// Storage drivers.
const (
	DriverMemory   = "memory"
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverRedis    = "redis"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string    `mapstructure:"env" validate:"required"` // current application environment (local, dev, production etc)
	TelegramAPIToken string    `mapstructure:"-"`                       // Telegram API token loaded from environment
	ContentPath      string    `mapstructure:"content_path"`            // prayers JSON, empty for the bundled content
	Timezone         string    `mapstructure:"timezone"`                // calendar used for streaks and the daily verse
	Storage          Storage   `mapstructure:"storage"`                 // learner state persistence
	DB               DB        `mapstructure:"database"`                // database configuration section
	Cache            Cache     `mapstructure:"cache"`                   // answer cache
	Metrics          Metrics   `mapstructure:"metrics"`                 // prometheus endpoint
	Reminders        Reminders `mapstructure:"reminders"`               // daily verse broadcast

	Location *time.Location `mapstructure:"-"` // resolved Timezone, set by Validate
}

// Storage selects and configures the key-value backend.
type Storage struct {
	Driver     string `mapstructure:"driver" validate:"required|in:memory,sqlite,postgres,redis"`
	SQLitePath string `mapstructure:"sqlite_path"`
	RedisAddr  string `mapstructure:"redis_addr"`
	RedisDB    int    `mapstructure:"redis_db" validate:"min:0"`
	Compress   bool   `mapstructure:"compress"` // zstd-compress stored blobs
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                                // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections" validate:"min:1"` // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`                // maximum lifetime of a single connection
}

// Cache configures the answer cache.
type Cache struct {
	Enabled bool `mapstructure:"enabled"`
	SizeMB  int  `mapstructure:"size_mb" validate:"min:1"`
}

// Metrics configures the prometheus endpoint.
type Metrics struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// Reminders configures the daily verse broadcast.
type Reminders struct {
	Enabled  bool   `mapstructure:"enabled"`
	Schedule string `mapstructure:"schedule"` // standard 5-field cron spec
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads configuration from config files and environment variables.
// A .env file in the working directory is applied first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	setDefaults(v)

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	cfg.DB.URL = v.GetString("database_url")

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("content_path", "")
	v.SetDefault("timezone", "Local")
	v.SetDefault("storage.driver", DriverSQLite)
	v.SetDefault("storage.sqlite_path", "data/progress.db")
	v.SetDefault("storage.redis_addr", "localhost:6379")
	v.SetDefault("storage.redis_db", 0)
	v.SetDefault("storage.compress", false)
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.size_mb", 8)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", ":9090")
	v.SetDefault("reminders.enabled", true)
	v.SetDefault("reminders.schedule", "0 8 * * *")
}

// Validate checks field rules and cross-field constraints and resolves
// the timezone into Location.
func (c *Config) Validate() error {
	vd := validate.Struct(c)
	if !vd.Validate() {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, vd.Errors.One())
	}

	// Zero values skip the min rules above.
	if c.DB.MaxConnections <= 0 {
		return fmt.Errorf("%w: database.max_connections must be positive", ErrInvalidConfig)
	}
	if c.Cache.Enabled && c.Cache.SizeMB <= 0 {
		return fmt.Errorf("%w: cache.size_mb must be positive when the cache is enabled", ErrInvalidConfig)
	}

	switch c.Storage.Driver {
	case DriverPostgres:
		if _, err := c.DB.DSN(); err != nil {
			return fmt.Errorf("storage driver %q: %w", c.Storage.Driver, err)
		}
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("%w: storage.sqlite_path is required for sqlite", ErrInvalidConfig)
		}
	case DriverRedis:
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("%w: storage.redis_addr is required for redis", ErrInvalidConfig)
		}
	}

	if c.Reminders.Enabled {
		if _, err := cron.ParseStandard(c.Reminders.Schedule); err != nil {
			return fmt.Errorf("%w: reminders.schedule: %v", ErrInvalidConfig, err)
		}
	}

	loc, err := entities.ParseTimezoneLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	c.Location = loc

	return nil
}
