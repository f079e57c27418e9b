package config

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/abhisek/lovequest/internal/store"
)

// DefaultPlayerName is who the finale letter is addressed to.
const DefaultPlayerName = "Kullu"

// Config holds runtime configuration. Load fills it from the environment;
// command-line flags override individual fields afterwards.
type Config struct {
	// DBPath is the SQLite file holding device-local progress.
	DBPath string

	// RedisURL, when set, stores progress in Redis instead of DBPath.
	RedisURL string

	// QuestsFile optionally replaces the embedded adventure.
	QuestsFile string

	// PlayerName is used in the finale greeting.
	PlayerName string

	// LogFile receives structured logs. The terminal UI owns stdout.
	LogFile string

	LogLevel slog.Level

	// LogFormat is "text" or "json".
	LogFormat string
}

// envVars mirrors the LOVEQUEST_* environment. Empty values fall back to
// defaults in Load.
type envVars struct {
	DBPath     string `env:"LOVEQUEST_DB"`
	RedisURL   string `env:"LOVEQUEST_REDIS_URL"`
	QuestsFile string `env:"LOVEQUEST_QUESTS"`
	PlayerName string `env:"LOVEQUEST_NAME"`
	LogFile    string `env:"LOVEQUEST_LOG_FILE"`
	LogLevel   string `env:"LOVEQUEST_LOG_LEVEL"`
	LogFormat  string `env:"LOVEQUEST_LOG_FORMAT"`
}

// Load reads configuration from LOVEQUEST_* environment variables.
func Load() (*Config, error) {
	var vars envVars
	if err := env.Parse(&vars); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	dbPath := vars.DBPath
	if dbPath == "" {
		p, err := store.DefaultDBPath()
		if err != nil {
			return nil, err
		}
		dbPath = p
	}

	return &Config{
		DBPath:     dbPath,
		RedisURL:   vars.RedisURL,
		QuestsFile: vars.QuestsFile,
		PlayerName: orDefault(vars.PlayerName, DefaultPlayerName),
		LogFile:    orDefault(vars.LogFile, DefaultLogFile(dbPath)),
		LogLevel:   ParseLogLevel(vars.LogLevel),
		LogFormat:  parseLogFormat(vars.LogFormat),
	}, nil
}

// DefaultLogFile places the log next to the database.
func DefaultLogFile(dbPath string) string {
	return filepath.Join(filepath.Dir(dbPath), "lovequest.log")
}

// ParseLogLevel maps a level name to a slog.Level, defaulting to info.
func ParseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func parseLogFormat(format string) string {
	if strings.ToLower(format) == "json" {
		return "json"
	}
	return "text"
}

func orDefault(value, defaultValue string) string {
	if value != "" {
		return value
	}
	return defaultValue
}
