package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("DB_USER", "toystore")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "toystore")
	t.Setenv("DB_PORT", "5432")
	t.Setenv("APP_PORT", "")
	t.Setenv("REDIS_DB", "2")

	cfg := LoadConfig()

	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "toystore", cfg.DBUser)
	assert.Equal(t, "3000", cfg.AppPort, "empty APP_PORT falls back to 3000")
	assert.Equal(t, 2, cfg.RedisDB)
}

func TestEnvInt(t *testing.T) {
	t.Run("Missing", func(t *testing.T) {
		t.Setenv("REDIS_DB", "")
		assert.Equal(t, 5, envInt("REDIS_DB", 5))
	})

	t.Run("Invalid", func(t *testing.T) {
		t.Setenv("REDIS_DB", "not-a-number")
		assert.Equal(t, 0, envInt("REDIS_DB", 0))
	})

	t.Run("Valid", func(t *testing.T) {
		t.Setenv("REDIS_DB", "3")
		assert.Equal(t, 3, envInt("REDIS_DB", 0))
	})
}
