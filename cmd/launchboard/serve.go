package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/3-lines-studio/launchboard"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(st *cliState) *cobra.Command {
	var (
		addr  string
		build bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview the built site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("addr") {
				st.cfg.Serve.Addr = addr
			}

			var (
				site *launchboard.Site
				err  error
			)
			if build {
				site, err = runBuild(cmd, st)
			} else {
				site, err = newSite(cmd, st)
			}
			if err != nil {
				return err
			}

			return serve(cmd.Context(), st.cfg.Serve.Addr, site.Handler(), st.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config serve.addr)")
	cmd.Flags().BoolVar(&build, "build", false, "build the site before serving")

	return cmd
}

func serve(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("serving site", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	<-errCh
	return nil
}
