package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/3-lines-studio/launchboard/internal/adapters/cli"
	"github.com/3-lines-studio/launchboard/internal/adapters/fs"
	"github.com/3-lines-studio/launchboard/internal/core"
	"github.com/3-lines-studio/launchboard/internal/page"
	"github.com/3-lines-studio/launchboard/internal/types"
)

const (
	IndexFile    = "index.html"
	PropsFile    = "_data/index.json"
	ManifestFile = "manifest.json"
	AssetsDir    = "assets"
)

var ErrNoOutputDir = errors.New("output directory is required")

type BuildInput struct {
	OutDir string
	// Clean removes OutDir before writing.
	Clean bool
	// Timeout bounds the launches query; zero means no deadline.
	Timeout time.Duration
	// Public is copied verbatim to the site root when set.
	Public    FileSystem
	PublicDir string
}

type BuildOutput struct {
	Success  bool
	Error    error
	Launches []types.Launch
	Files    []string
	Manifest *core.Manifest
}

type BuildService struct {
	source   LaunchSource
	renderer PageRenderer
	fs       FileSystem
	cli      CLIOutput
	logger   *zap.Logger
	newID    func() string
	now      func() time.Time
}

func NewBuildService(source LaunchSource, renderer PageRenderer, fs FileSystem, cli CLIOutput, logger *zap.Logger) *BuildService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BuildService{
		source:   source,
		renderer: renderer,
		fs:       fs,
		cli:      cli,
		logger:   logger,
		newID:    uuid.NewString,
		now:      time.Now,
	}
}

// BuildSite fetches the launches and writes the static site. A failed fetch
// aborts before anything touches the output directory.
func (s *BuildService) BuildSite(ctx context.Context, input BuildInput) BuildOutput {
	s.cli.PrintHeader("Launchboard Build")

	if input.OutDir == "" {
		return BuildOutput{Error: ErrNoOutputDir}
	}

	report := cli.NewBuildReport(s.cli, input.OutDir)
	defer report.Render()

	buildID := s.newID()
	logger := s.logger.With(zap.String("build_id", buildID))

	fail := func(step *cli.BuildStep, scope, message string, err error) BuildOutput {
		report.EndStep(step, err)
		report.AddError(scope, message, []string{err.Error()})
		logger.Error(message, zap.Error(err))
		return BuildOutput{Error: err, Files: report.Files()}
	}

	stepFetch := report.StartStep("Fetching launches")
	launches, err := s.fetch(ctx, input.Timeout)
	if err != nil {
		return fail(stepFetch, "launches", "Launches query failed", err)
	}
	report.EndStep(stepFetch, nil)
	report.SetLaunchCount(len(launches))

	if dups := core.DuplicateKeys(launches); len(dups) > 0 {
		report.AddWarning("launches", "Duplicate launch ids; card keys will collide", dups)
	}

	stepDirs := report.StartStep("Preparing output directory")
	if err := s.prepareOutDir(input); err != nil {
		return fail(stepDirs, input.OutDir, "Failed to prepare output directory", err)
	}
	report.EndStep(stepDirs, nil)

	write := func(rel string, data []byte) error {
		full := filepath.Join(input.OutDir, filepath.FromSlash(rel))
		if err := s.fs.WriteFile(full, data, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", rel, err)
		}
		report.AddFile(rel)
		return nil
	}

	stepCSS := report.StartStep("Writing stylesheet")
	css := page.Stylesheet()
	cssFile := path.Join(AssetsDir, core.HashedName(page.StylesheetName, css))
	if err := write(cssFile, css); err != nil {
		return fail(stepCSS, cssFile, "Failed to write stylesheet", err)
	}
	report.EndStep(stepCSS, nil)

	stepRender := report.StartStep("Rendering page")
	var html bytes.Buffer
	if err := s.renderer.Render(&html, page.Input{Launches: launches, StylesheetHref: "/" + cssFile}); err != nil {
		return fail(stepRender, IndexFile, "Failed to render page", err)
	}
	if err := write(IndexFile, html.Bytes()); err != nil {
		return fail(stepRender, IndexFile, "Failed to write page", err)
	}
	report.EndStep(stepRender, nil)

	stepProps := report.StartStep("Writing static props")
	props, err := json.MarshalIndent(types.NewStaticProps(launches), "", "  ")
	if err != nil {
		return fail(stepProps, PropsFile, "Failed to encode static props", err)
	}
	if err := write(PropsFile, props); err != nil {
		return fail(stepProps, PropsFile, "Failed to write static props", err)
	}
	report.EndStep(stepProps, nil)

	var publicFiles []string
	if input.Public != nil {
		stepPublic := report.StartStep("Copying public assets")
		copied, err := fs.CopyDir(input.Public, input.PublicDir, s.fs, input.OutDir)
		report.EndStep(stepPublic, nil)
		if err != nil {
			report.AddWarning("Public assets", "Failed to copy public assets", []string{err.Error()})
			logger.Warn("public assets not copied", zap.Error(err))
		}
		for _, rel := range copied {
			report.AddFile(rel)
		}
		publicFiles = copied
	}

	stepManifest := report.StartStep("Writing manifest")
	manifest := core.NewManifest(buildID, s.now())
	manifest.LaunchCount = len(launches)
	manifest.AddRoute("/", core.ManifestRoute{
		HTML: IndexFile,
		Data: PropsFile,
		CSS:  cssFile,
	})
	manifest.Assets = append([]string{cssFile}, publicFiles...)

	data, err := manifest.Marshal()
	if err != nil {
		return fail(stepManifest, ManifestFile, "Failed to encode manifest", err)
	}
	if err := write(ManifestFile, data); err != nil {
		return fail(stepManifest, ManifestFile, "Failed to write manifest", err)
	}
	report.EndStep(stepManifest, nil)

	logger.Info("site built",
		zap.String("out_dir", input.OutDir),
		zap.Int("launches", len(launches)),
		zap.Int("files", len(report.Files())),
	)

	return BuildOutput{
		Success:  true,
		Launches: launches,
		Files:    report.Files(),
		Manifest: manifest,
	}
}

func (s *BuildService) fetch(ctx context.Context, timeout time.Duration) ([]types.Launch, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return s.source.FetchLaunches(ctx)
}

func (s *BuildService) prepareOutDir(input BuildInput) error {
	if input.Clean {
		if err := s.fs.RemoveAll(input.OutDir); err != nil {
			return fmt.Errorf("failed to clean %s: %w", input.OutDir, err)
		}
	}

	for _, dir := range []string{
		input.OutDir,
		filepath.Join(input.OutDir, AssetsDir),
		filepath.Join(input.OutDir, filepath.Dir(filepath.FromSlash(PropsFile))),
	} {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return nil
}
