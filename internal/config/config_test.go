package config

import (
	"strings"
	"testing"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment
// cannot leak into a test
func clearEnv(t *testing.T) {
	for _, key := range []string{
		"BOT_TOKEN", "WEBHOOK_URL", "HTTP_ADDR", "PREFERENCES_BACKEND", "SESSION_TTL",
		"DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD",
		"REDIS_URL", "LOG_FILE", "LOG_MAX_SIZE_MB", "LOG_MAX_BACKUPS", "LOG_MAX_AGE_DAYS",
	} {
		t.Setenv(key, "")
	}
}

func TestConfig_DSN(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     "5432",
			User:     "testuser",
			Password: "testpass",
			Name:     "testdb",
		},
	}

	dsn := cfg.DSN()
	expected := "host=localhost port=5432 user=testuser password=testpass dbname=testdb sslmode=disable"
	assert.Equal(t, expected, dsn)
}

func TestLoad_WithDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("DB_PASSWORD", "test_db_password")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test_token", cfg.BotToken)
	assert.Equal(t, defaultOf(t, "WEBHOOK_URL"), cfg.WebhookURL)
	assert.True(t, strings.HasPrefix(cfg.WebhookURL, "https://script.google.com/macros/s/"))
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, BackendPostgres, cfg.PreferencesBackend)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, "waitlist", cfg.Database.Name)
	assert.Equal(t, "waitlist", cfg.Database.User)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Empty(t, cfg.Log.File)
	assert.Equal(t, 100, cfg.Log.MaxSizeMB)
	assert.Equal(t, 5, cfg.Log.MaxBackups)
	assert.Equal(t, 30, cfg.Log.MaxAgeDays)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("BOT_TOKEN", "test_token")
	t.Setenv("PREFERENCES_BACKEND", "redis")
	t.Setenv("REDIS_URL", "redis://cache:6379/2")
	t.Setenv("WEBHOOK_URL", "http://hooks.local/waitlist")
	t.Setenv("SESSION_TTL", "90m")
	t.Setenv("LOG_FILE", "/var/log/waitlist.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, BackendRedis, cfg.PreferencesBackend)
	assert.Equal(t, "redis://cache:6379/2", cfg.Redis.URL)
	assert.Equal(t, "http://hooks.local/waitlist", cfg.WebhookURL)
	assert.Equal(t, 90*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "/var/log/waitlist.log", cfg.Log.File)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		env         map[string]string
		errContains string
	}{
		{
			name:        "missing bot token",
			env:         map[string]string{"DB_PASSWORD": "secret"},
			errContains: "BOT_TOKEN",
		},
		{
			name:        "missing db password for postgres",
			env:         map[string]string{"BOT_TOKEN": "token"},
			errContains: "DB_PASSWORD",
		},
		{
			name:        "unknown backend",
			env:         map[string]string{"BOT_TOKEN": "token", "PREFERENCES_BACKEND": "mongo"},
			errContains: "PREFERENCES_BACKEND",
		},
		{
			name:        "malformed session ttl",
			env:         map[string]string{"BOT_TOKEN": "token", "DB_PASSWORD": "secret", "SESSION_TTL": "soon"},
			errContains: "SessionTTL",
		},
		{
			name:        "non-positive session ttl",
			env:         map[string]string{"BOT_TOKEN": "token", "DB_PASSWORD": "secret", "SESSION_TTL": "0s"},
			errContains: "SESSION_TTL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()

			assert.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

// defaultOf returns the envDefault declared for key on Config
func defaultOf(t *testing.T, key string) string {
	t.Helper()
	params, err := env.GetFieldParams(&Config{})
	require.NoError(t, err)
	for _, p := range params {
		if p.Key == key {
			require.True(t, p.HasDefaultValue, "%s has no default", key)
			return p.DefaultValue
		}
	}
	t.Fatalf("no env field %s", key)
	return ""
}
