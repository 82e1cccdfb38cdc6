package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Backend.URL)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.Session.Store)
	assert.Equal(t, "memory", cfg.Storage.Type)
	assert.Equal(t, 10*time.Minute, cfg.Backend.ProcessTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("API_URL", "https://minutes.example.com/")
	t.Setenv("SESSION_STORE", "redis")
	t.Setenv("REDIS_HOST", "cache")
	t.Setenv("REDIS_PORT", "6380")
	t.Setenv("BACKEND_CHAT_TIMEOUT", "0s")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test,http://b.test")

	cfg, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, "https://minutes.example.com", cfg.Backend.URL)
	assert.Equal(t, "redis", cfg.Session.Store)
	assert.Equal(t, "cache:6380", cfg.GetRedisAddr())
	assert.Zero(t, cfg.Backend.ChatTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestFromEnv_RejectsUnknownStores(t *testing.T) {
	t.Setenv("SESSION_STORE", "postgres")
	_, err := FromEnv()
	assert.Error(t, err)

	t.Setenv("SESSION_STORE", "memory")
	t.Setenv("STORAGE_TYPE", "s3")
	_, err = FromEnv()
	assert.Error(t, err)
}
