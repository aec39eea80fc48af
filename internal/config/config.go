package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Preference backends
const (
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

// Config holds all application configuration
type Config struct {
	BotToken           string        `env:"BOT_TOKEN"`
	WebhookURL         string        `env:"WEBHOOK_URL" envDefault:"https://script.google.com/macros/s/AKfycbz5qwrRGrhZz8PlUoS4_sQPsPRIX67YrFBXIrMBFrzLDcLnjqQiPwdZaqvQWCP9SGMz/exec"`
	HTTPAddr           string        `env:"HTTP_ADDR" envDefault:":8080"`
	PreferencesBackend string        `env:"PREFERENCES_BACKEND" envDefault:"postgres"`
	SessionTTL         time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	Database           DatabaseConfig
	Redis              RedisConfig
	Log                LogConfig
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host     string `env:"DB_HOST" envDefault:"localhost"`
	Port     string `env:"DB_PORT" envDefault:"5432"`
	Name     string `env:"DB_NAME" envDefault:"waitlist"`
	User     string `env:"DB_USER" envDefault:"waitlist"`
	Password string `env:"DB_PASSWORD"`
}

// RedisConfig holds redis connection settings
type RedisConfig struct {
	URL string `env:"REDIS_URL" envDefault:"redis://localhost:6379/0"`
}

// LogConfig controls log output. An empty File logs to stdout only.
type LogConfig struct {
	File       string `env:"LOG_FILE"`
	MaxSizeMB  int    `env:"LOG_MAX_SIZE_MB" envDefault:"100"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"5"`
	MaxAgeDays int    `env:"LOG_MAX_AGE_DAYS" envDefault:"30"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks required fields and the backend choice
func (c *Config) Validate() error {
	if c.BotToken == "" {
		return fmt.Errorf("BOT_TOKEN is required")
	}
	if c.WebhookURL == "" {
		return fmt.Errorf("WEBHOOK_URL must not be empty")
	}

	switch c.PreferencesBackend {
	case BackendPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case BackendRedis:
		if c.Redis.URL == "" {
			return fmt.Errorf("REDIS_URL is required")
		}
	default:
		return fmt.Errorf("unknown PREFERENCES_BACKEND %q", c.PreferencesBackend)
	}

	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be positive")
	}
	return nil
}

// DSN returns PostgreSQL connection string
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
	)
}
