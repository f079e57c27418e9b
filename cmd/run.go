package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/lovequest/internal/adventure"
	"github.com/abhisek/lovequest/internal/app"
	"github.com/abhisek/lovequest/internal/quest"
)

// runApp opens the store, restores the engine and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := openEnv(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	quests, err := quest.Load(e.cfg.QuestsFile)
	if err != nil {
		return fmt.Errorf("load adventure: %w", err)
	}

	engine := adventure.New(e.ctx, quests, e.progress, e.logger)
	e.logger.InfoContext(e.ctx, "starting adventure",
		slog.String("title", quests.Title()),
		slog.String("stage", string(engine.Stage())))

	return app.Run(e.ctx, app.Options{
		Engine:     engine,
		PlayerName: e.cfg.PlayerName,
		Logger:     e.logger,
	})
}
