package cmd

import (
	"github.com/spf13/cobra"
)

func newPlayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "play",
		Short: "Start or resume the adventure",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd)
		},
	}
}
