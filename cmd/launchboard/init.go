package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/launchboard/internal/adapters/cli"
	"github.com/3-lines-studio/launchboard/internal/adapters/fs"
	"github.com/3-lines-studio/launchboard/internal/initcmd"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a default config and editable public assets",
		Args:  cobra.MaximumNArgs(1),
		// init runs before any config exists.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			out := cli.NewOutputTo(cmd.OutOrStdout(), cmd.ErrOrStderr())
			return initcmd.Run(dir, fs.NewOSFileSystem(), out)
		},
	}
}
