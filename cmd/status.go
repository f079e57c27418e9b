package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/lovequest/internal/quest"
	"github.com/abhisek/lovequest/internal/store"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show saved progress",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			quests, err := quest.Load(e.cfg.QuestsFile)
			if err != nil {
				return fmt.Errorf("load adventure: %w", err)
			}

			rec, ok := e.progress.Load(e.ctx)
			startedAt, started := e.progress.StartedAt(e.ctx)
			if !started && e.progress.HasStarted(e.ctx) {
				started = true
			}
			printStatus(cmd.OutOrStdout(), quests, rec, ok, started, startedAt)
			return nil
		},
	}
}

func printStatus(w io.Writer, quests *quest.Registry, rec store.ProgressRecord, ok, started bool, startedAt time.Time) {
	if !ok {
		rec = store.ProgressRecord{CurrentStage: quest.StageIntro}
	}

	fmt.Fprintf(w, "Stage:     %s\n", rec.CurrentStage.DisplayName())

	done := make([]string, 0, len(rec.CompletedQuestIDs))
	for _, id := range rec.CompletedQuestIDs {
		if q, found := quests.FindByID(id); found {
			done = append(done, q.Title)
		} else {
			done = append(done, id)
		}
	}
	completed := "none"
	if len(done) > 0 {
		completed = strings.Join(done, ", ")
	}
	fmt.Fprintf(w, "Completed: %d/%d (%s)\n", len(rec.CompletedQuestIDs), quests.Len(), completed)

	switch {
	case started && !startedAt.IsZero():
		fmt.Fprintf(w, "Started:   %s\n", startedAt.Local().Format(time.RFC1123))
	case started:
		fmt.Fprintln(w, "Started:   yes")
	default:
		fmt.Fprintln(w, "Started:   no")
	}
}
