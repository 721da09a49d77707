package initcmd

import (
	"errors"
	"fmt"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/3-lines-studio/launchboard/internal/adapters/cli"
	"github.com/3-lines-studio/launchboard/internal/adapters/fs"
	"github.com/3-lines-studio/launchboard/internal/assets"
	"github.com/3-lines-studio/launchboard/internal/config"
)

const configHeader = "# launchboard configuration. Flags and LAUNCHBOARD_* variables override these values.\n"

var ErrAlreadyInitialized = errors.New("project already initialized")

// Run writes a default config file and a copy of the public assets into
// projectDir so both can be edited.
func Run(projectDir string, fsys fs.FileSystem, out *cli.Output) error {
	out.PrintHeader("launchboard init")

	configPath := filepath.Join(projectDir, config.DefaultFile)
	if fsys.FileExists(configPath) {
		return fmt.Errorf("%w: %s exists", ErrAlreadyInitialized, configPath)
	}

	if err := fsys.MkdirAll(projectDir, 0755); err != nil {
		return fmt.Errorf("failed to create project directory: %w", err)
	}

	cfg := config.Default()
	cfg.PublicDir = assets.PublicDir

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := fsys.WriteFile(configPath, append([]byte(configHeader), data...), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", configPath, err)
	}
	out.PrintFile(configPath)

	publicDir := filepath.Join(projectDir, assets.PublicDir)
	copied, err := fs.CopyDir(fs.NewEmbedFileSystem(assets.PublicFS()), assets.PublicDir, fsys, publicDir)
	if err != nil {
		return fmt.Errorf("failed to copy public assets: %w", err)
	}
	for _, file := range copied {
		out.PrintFile(filepath.Join(publicDir, filepath.FromSlash(file)))
	}

	out.PrintDone(fmt.Sprintf("Created %d files", len(copied)+1))
	return nil
}
