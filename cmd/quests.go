package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/abhisek/lovequest/internal/quest"
)

func newQuestsCmd() *cobra.Command {
	questsCmd := &cobra.Command{
		Use:   "quests",
		Short: "List the adventure's quests, or check a custom adventure file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if path, _ := cmd.Flags().GetString("check"); path != "" {
				reg, err := quest.Load(path)
				if err != nil {
					return fmt.Errorf("check %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%q, %d quests)\n", path, reg.Title(), reg.Len())
				return nil
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			reg, err := quest.Load(cfg.QuestsFile)
			if err != nil {
				return fmt.Errorf("load adventure: %w", err)
			}
			printQuests(cmd.OutOrStdout(), reg)
			return nil
		},
	}
	questsCmd.Flags().String("check", "", "Validate an adventure YAML file and exit")
	return questsCmd
}

// printQuests lists titles and places. Answers are never printed.
func printQuests(w io.Writer, reg *quest.Registry) {
	fmt.Fprintln(w, reg.Title())
	for i, q := range reg.List() {
		line := fmt.Sprintf("%d. %s", i+1, q.Title)
		if q.Location != "" {
			line += " @ " + q.Location
		}
		if q.Time != "" {
			line += " (" + q.Time + ")"
		}
		if q.HasCarSurprise {
			line += " 🚗"
		}
		fmt.Fprintln(w, line)
	}
}
