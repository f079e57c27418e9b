package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Clear saved progress so the adventure starts over",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(cmd)
			if err != nil {
				return err
			}
			defer e.Close()

			e.progress.Clear(e.ctx)
			e.logger.InfoContext(e.ctx, "progress cleared from cli")
			fmt.Fprintln(cmd.OutOrStdout(), "Progress cleared. The adventure will start from the beginning.")
			return nil
		},
	}
}
