package launchboard

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/3-lines-studio/launchboard/internal/adapters/cli"
	"github.com/3-lines-studio/launchboard/internal/adapters/fs"
	httpadapter "github.com/3-lines-studio/launchboard/internal/adapters/http"
	"github.com/3-lines-studio/launchboard/internal/adapters/spacex"
	"github.com/3-lines-studio/launchboard/internal/assets"
	"github.com/3-lines-studio/launchboard/internal/config"
	"github.com/3-lines-studio/launchboard/internal/metrics"
	"github.com/3-lines-studio/launchboard/internal/page"
	"github.com/3-lines-studio/launchboard/internal/types"
	"github.com/3-lines-studio/launchboard/internal/usecase"
)

type Launch = types.Launch

type StaticProps = types.StaticProps

type Config = config.Config

type LaunchSource = usecase.LaunchSource

type BuildResult = usecase.BuildOutput

type FileSystem = fs.FileSystem

type Site struct {
	cfg    *config.Config
	logger *zap.Logger
	output *cli.Output
	fs     fs.FileSystem
	source usecase.LaunchSource
	render *page.Renderer
}

type Option func(*Site)

func WithLogger(logger *zap.Logger) Option {
	return func(s *Site) {
		s.logger = logger
	}
}

// WithOutput sends the human-readable build report to out and errOut
// instead of the terminal.
func WithOutput(out, errOut io.Writer) Option {
	return func(s *Site) {
		s.output = cli.NewOutputTo(out, errOut)
	}
}

// WithLaunchSource replaces the GraphQL executor, e.g. with fixtures.
func WithLaunchSource(source LaunchSource) Option {
	return func(s *Site) {
		s.source = source
	}
}

func WithFileSystem(fsys FileSystem) Option {
	return func(s *Site) {
		s.fs = fsys
	}
}

func New(cfg *Config, opts ...Option) (*Site, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Site{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	if s.output == nil {
		s.output = cli.NewOutput()
	}
	if s.fs == nil {
		s.fs = fs.NewOSFileSystem()
	}

	if s.source == nil {
		exec, err := spacex.NewExecutor(cfg.Endpoint, spacex.WithLogger(s.logger.Named("spacex")))
		if err != nil {
			return nil, err
		}
		s.source = exec
	}

	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	s.render = page.NewRenderer(s.logger.Named("page"), page.Options{
		Title:    cfg.Title,
		Location: loc,
	})

	return s, nil
}

func (s *Site) Config() *Config {
	return s.cfg
}

// Build runs the full build step: fetch, render, and write the site to
// the configured output directory.
func (s *Site) Build(ctx context.Context) (BuildResult, error) {
	input := usecase.BuildInput{
		OutDir:  s.cfg.OutDir,
		Clean:   s.cfg.Clean,
		Timeout: s.cfg.TimeoutDuration(),
	}

	if s.cfg.PublicDir != "" {
		input.Public = fs.NewOSFileSystem()
		input.PublicDir = s.cfg.PublicDir
	} else {
		input.Public = fs.NewEmbedFileSystem(assets.PublicFS())
		input.PublicDir = assets.PublicDir
	}

	svc := usecase.NewBuildService(s.source, s.render, s.fs, s.output, s.logger.Named("build"))
	result := svc.BuildSite(ctx, input)
	if result.Error != nil {
		return result, fmt.Errorf("build failed: %w", result.Error)
	}
	return result, nil
}

// StaticProps runs only the data-loading half of the build.
func (s *Site) StaticProps(ctx context.Context) (StaticProps, error) {
	if timeout := s.cfg.TimeoutDuration(); timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	out := usecase.NewExportService(s.source).ExportStatic(ctx)
	if out.Error != nil {
		return StaticProps{}, out.Error
	}
	return out.Props, nil
}

// Handler serves the built output directory with a /metrics endpoint.
func (s *Site) Handler() http.Handler {
	site := httpadapter.NewSiteHandler(s.cfg.OutDir, s.fs, s.logger.Named("serve"))
	return httpadapter.NewRouter(site, metrics.New(), s.logger.Named("http"))
}
