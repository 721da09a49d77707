package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/3-lines-studio/launchboard/internal/config"
	"github.com/3-lines-studio/launchboard/internal/logging"
)

type cliState struct {
	configPath string
	verbose    bool
	endpoint   string
	outDir     string
	timezone   string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	st := &cliState{}

	root := &cobra.Command{
		Use:   "launchboard",
		Short: "Build a static page of the latest SpaceX launches",
		Long: `launchboard queries the SpaceX GraphQL API once at build time for the
ten most recent launches and renders them into a static HTML page.

  launchboard init             write launchboard.yaml and public/
  launchboard build            fetch and write the site to ./out
  launchboard export           print the page props as JSON
  launchboard serve --build    build, then preview the site locally`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return st.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if st.logger != nil {
				_ = st.logger.Sync()
			}
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	flags := root.PersistentFlags()
	flags.StringVarP(&st.configPath, "config", "c", config.DefaultFile, "path to the YAML config file")
	flags.BoolVarP(&st.verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&st.endpoint, "endpoint", "", "GraphQL endpoint (overrides config)")
	flags.StringVarP(&st.outDir, "out", "o", "", "output directory (overrides config)")
	flags.StringVar(&st.timezone, "timezone", "", "IANA zone used to format launch dates (overrides config)")

	root.AddCommand(newBuildCmd(st), newExportCmd(st), newServeCmd(st), newInitCmd())
	return root
}

func (st *cliState) init(cmd *cobra.Command) error {
	flags := cmd.Flags()

	cfg, err := config.Load(st.configPath, flags.Changed("config"))
	if err != nil {
		return err
	}
	cfg.ApplyEnv(os.LookupEnv)

	if flags.Changed("endpoint") {
		cfg.Endpoint = st.endpoint
	}
	if flags.Changed("out") {
		cfg.OutDir = st.outDir
	}
	if flags.Changed("timezone") {
		cfg.Timezone = st.timezone
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
		Verbose:     st.verbose,
	})
	if err != nil {
		return err
	}

	st.cfg = cfg
	st.logger = logger
	logger.Debug("config loaded",
		zap.String("config", st.configPath),
		zap.String("endpoint", cfg.Endpoint),
		zap.String("out_dir", cfg.OutDir),
	)
	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
