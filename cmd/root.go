package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abhisek/lovequest/internal/config"
	"github.com/abhisek/lovequest/internal/logging"
	"github.com/abhisek/lovequest/internal/store"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "lovequest",
		Short:         "A Valentine's riddle adventure for the terminal",
		Long:          "Love Quest: three riddles, a car full of surprises and a letter at the end.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String("db", "", "Path to SQLite database file (overrides LOVEQUEST_DB env var)")
	flags.String("redis", "", "Redis URL to keep progress in instead of the local database (overrides LOVEQUEST_REDIS_URL)")
	flags.String("quests", "", "Path to a custom adventure YAML file (overrides LOVEQUEST_QUESTS)")
	flags.String("name", "", "Name the finale letter is addressed to (overrides LOVEQUEST_NAME)")
	flags.String("log-file", "", "Log file path (overrides LOVEQUEST_LOG_FILE)")
	flags.String("log-level", "", "Log level: debug, info, warn, error (overrides LOVEQUEST_LOG_LEVEL)")

	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newResetCmd())
	rootCmd.AddCommand(newQuestsCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

// loadConfig reads the environment and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	logFileSet := flags.Changed("log-file")
	if p, _ := flags.GetString("db"); p != "" {
		cfg.DBPath = p
		if !logFileSet && !envSet("LOVEQUEST_LOG_FILE") {
			cfg.LogFile = config.DefaultLogFile(p)
		}
	}
	if v, _ := flags.GetString("redis"); v != "" {
		cfg.RedisURL = v
	}
	if v, _ := flags.GetString("quests"); v != "" {
		cfg.QuestsFile = v
	}
	if v, _ := flags.GetString("name"); v != "" {
		cfg.PlayerName = v
	}
	if v, _ := flags.GetString("log-file"); v != "" {
		cfg.LogFile = v
	}
	if v, _ := flags.GetString("log-level"); v != "" {
		cfg.LogLevel = config.ParseLogLevel(v)
	}
	return cfg, nil
}

// env holds everything a command needs to touch saved progress.
type env struct {
	cfg      *config.Config
	ctx      context.Context
	logger   *slog.Logger
	progress *store.ProgressStore
	closers  []func() error
}

// openEnv loads config, sets up logging for this run and opens the
// progress backend: Redis when configured, otherwise the SQLite file.
func openEnv(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger, closeLog, err := logging.Setup(cfg)
	if err != nil {
		return nil, fmt.Errorf("setup logging: %w", err)
	}
	e := &env{cfg: cfg, logger: logger, closers: []func() error{closeLog}}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	e.ctx = logging.WithAttrs(ctx,
		slog.String("session_id", uuid.New().String()),
		slog.String("command", cmd.Name()))

	kv, err := e.openKV()
	if err != nil {
		e.Close()
		return nil, err
	}
	e.progress = store.NewProgressStore(kv, logger)
	return e, nil
}

func (e *env) openKV() (store.KV, error) {
	if e.cfg.RedisURL != "" {
		kv, err := store.OpenRedis(e.ctx, e.cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("open redis: %w", err)
		}
		e.closers = append(e.closers, kv.Close)
		e.logger.DebugContext(e.ctx, "redis opened")
		return kv, nil
	}

	st, err := store.Open(e.cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	e.closers = append(e.closers, st.Close)
	e.logger.DebugContext(e.ctx, "store opened", slog.String("db", e.cfg.DBPath))
	return st.KV(), nil
}

// Close releases the backend, then the log file.
func (e *env) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func envSet(key string) bool {
	v, ok := os.LookupEnv(key)
	return ok && v != ""
}
