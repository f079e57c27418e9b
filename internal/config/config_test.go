package config

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "q.db")
	t.Setenv("LOVEQUEST_DB", db)
	t.Setenv("LOVEQUEST_QUESTS", "custom.yaml")
	t.Setenv("LOVEQUEST_NAME", "May")
	t.Setenv("LOVEQUEST_LOG_LEVEL", "debug")
	t.Setenv("LOVEQUEST_LOG_FORMAT", "JSON")
	t.Setenv("LOVEQUEST_LOG_FILE", "")
	t.Setenv("LOVEQUEST_REDIS_URL", "redis://localhost:6379/2")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, db, cfg.DBPath)
	assert.Equal(t, "redis://localhost:6379/2", cfg.RedisURL)
	assert.Equal(t, "custom.yaml", cfg.QuestsFile)
	assert.Equal(t, "May", cfg.PlayerName)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, filepath.Join(dir, "lovequest.log"), cfg.LogFile)
}

func TestLoadDefaults(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("LOVEQUEST_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("LOVEQUEST_NAME", "")
	t.Setenv("LOVEQUEST_LOG_LEVEL", "")
	t.Setenv("LOVEQUEST_LOG_FORMAT", "")
	t.Setenv("LOVEQUEST_LOG_FILE", "")
	t.Setenv("LOVEQUEST_QUESTS", "")
	t.Setenv("LOVEQUEST_REDIS_URL", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "lovequest", "lovequest.db"), cfg.DBPath)
	assert.Equal(t, DefaultPlayerName, cfg.PlayerName)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.QuestsFile)
	assert.Empty(t, cfg.RedisURL)
}

func TestLoadDoesNotCreateDirectories(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("LOVEQUEST_DB", "")
	t.Setenv("XDG_DATA_HOME", dataHome)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataHome, "lovequest", "lovequest.db"), cfg.DBPath)
	assert.NoDirExists(t, filepath.Join(dataHome, "lovequest"))
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLogLevel(tt.in), tt.in)
	}
}
