package main

import (
	"github.com/spf13/cobra"
)

func newExportCmd(st *cliState) *cobra.Command {
	return &cobra.Command{
		Use:   "export",
		Short: "Print the build-time page props as JSON",
		Long: `Runs the launches query and prints {"props": {"launches": [...]}} to
stdout without rendering or writing any files.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			site, err := newSite(cmd, st)
			if err != nil {
				return err
			}
			return site.ExportStaticProps(cmd.Context(), cmd.OutOrStdout())
		},
	}
}
