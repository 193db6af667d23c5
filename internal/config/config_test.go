package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 10*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, []string{"*"}, cfg.App.CORSOrigins)
	assert.Equal(t, "./data/expenses.db", cfg.DB.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.False(t, cfg.Tracker.EarnersOnly)
}

func TestLoadFromEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("DB_PATH", "/tmp/household.db")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("EARNERS_ONLY", "true")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")
	t.Setenv("CORS_ORIGINS", "http://localhost:3000,https://example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "/tmp/household.db", cfg.DB.Path)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Tracker.EarnersOnly)
	assert.Equal(t, 3*time.Second, cfg.App.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:3000", "https://example.com"}, cfg.App.CORSOrigins)
}

func TestLoadInvalid(t *testing.T) {
	t.Chdir(t.TempDir())

	t.Run("LogFormat", func(t *testing.T) {
		t.Setenv("LOG_FORMAT", "xml")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("Port", func(t *testing.T) {
		t.Setenv("PORT", "eighty")
		_, err := Load()
		assert.Error(t, err)
	})
}
