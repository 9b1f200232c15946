package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigMethods(t *testing.T) {
	t.Run("Addr returns formatted port", func(t *testing.T) {
		cfg := &Config{Port: 3000}
		assert.Equal(t, ":3000", cfg.Addr())
	})

	t.Run("SessionTTL converts hours to duration", func(t *testing.T) {
		cfg := &Config{SessionTTLHours: 168}
		assert.Equal(t, 168*time.Hour, cfg.SessionTTL())
	})
}

func TestValidate(t *testing.T) {
	t.Run("rejects non-positive session TTL", func(t *testing.T) {
		cfg := &Config{SessionTTLHours: 0}
		assert.Error(t, cfg.Validate(false))
	})

	t.Run("accepts sane config", func(t *testing.T) {
		cfg := &Config{SessionTTLHours: 24, RedisURL: "rediss://localhost:6379"}
		assert.NoError(t, cfg.Validate(true))
	})
}

func TestLoad(t *testing.T) {
	originalEnv := map[string]string{
		"PORT":                  os.Getenv("PORT"),
		"DATABASE_URL":          os.Getenv("DATABASE_URL"),
		"REDIS_URL":             os.Getenv("REDIS_URL"),
		"SESSION_TTL_HOURS":     os.Getenv("SESSION_TTL_HOURS"),
		"OPENAI_BASE_URL":       os.Getenv("OPENAI_BASE_URL"),
		"DISCORD_BASE_URL":      os.Getenv("DISCORD_BASE_URL"),
		"RATE_LIMIT_PER_MINUTE": os.Getenv("RATE_LIMIT_PER_MINUTE"),
		"LOG_LEVEL":             os.Getenv("LOG_LEVEL"),
	}

	defer func() {
		for k, v := range originalEnv {
			if v == "" {
				os.Unsetenv(k)
			} else {
				os.Setenv(k, v)
			}
		}
	}()

	t.Run("loads config with defaults", func(t *testing.T) {
		os.Setenv("DATABASE_URL", "postgres://localhost/test")
		os.Setenv("REDIS_URL", "redis://localhost:6379")
		os.Unsetenv("PORT")
		os.Unsetenv("SESSION_TTL_HOURS")
		os.Unsetenv("OPENAI_BASE_URL")
		os.Unsetenv("DISCORD_BASE_URL")
		os.Unsetenv("RATE_LIMIT_PER_MINUTE")
		os.Unsetenv("LOG_LEVEL")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 8080, cfg.Port)
		assert.Equal(t, "postgres://localhost/test", cfg.DatabaseURL)
		assert.Equal(t, "redis://localhost:6379", cfg.RedisURL)
		assert.Equal(t, 168, cfg.SessionTTLHours)
		assert.Equal(t, "https://api.openai.com/v1", cfg.OpenAIBaseURL)
		assert.Equal(t, "https://discord.com/api/v10", cfg.DiscordBaseURL)
		assert.Equal(t, 60, cfg.RateLimitPerMin)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("loads custom values", func(t *testing.T) {
		os.Setenv("DATABASE_URL", "postgres://localhost/test")
		os.Setenv("REDIS_URL", "redis://localhost:6379")
		os.Setenv("PORT", "3000")
		os.Setenv("SESSION_TTL_HOURS", "24")
		os.Setenv("LOG_LEVEL", "debug")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, 3000, cfg.Port)
		assert.Equal(t, 24, cfg.SessionTTLHours)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("fails without required values", func(t *testing.T) {
		os.Unsetenv("DATABASE_URL")
		os.Setenv("REDIS_URL", "redis://localhost:6379")

		_, err := Load()
		assert.Error(t, err)
	})
}
