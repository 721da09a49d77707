package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/launchboard"
)

func newBuildCmd(st *cliState) *cobra.Command {
	var clean bool

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Fetch the latest launches and write the static site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("clean") {
				st.cfg.Clean = clean
			}
			_, err := runBuild(cmd, st)
			return err
		},
	}
	cmd.Flags().BoolVar(&clean, "clean", false, "remove the output directory before building")

	return cmd
}

func newSite(cmd *cobra.Command, st *cliState) (*launchboard.Site, error) {
	return launchboard.New(st.cfg,
		launchboard.WithLogger(st.logger),
		launchboard.WithOutput(cmd.OutOrStdout(), cmd.ErrOrStderr()),
	)
}

func runBuild(cmd *cobra.Command, st *cliState) (*launchboard.Site, error) {
	site, err := newSite(cmd, st)
	if err != nil {
		return nil, err
	}

	if _, err := site.Build(cmd.Context()); err != nil {
		return nil, err
	}
	return site, nil
}
