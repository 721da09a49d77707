package usecase

import (
	"context"
	"io"

	"github.com/3-lines-studio/launchboard/internal/adapters/fs"
	"github.com/3-lines-studio/launchboard/internal/page"
	"github.com/3-lines-studio/launchboard/internal/types"
)

type LaunchSource interface {
	FetchLaunches(ctx context.Context) ([]types.Launch, error)
}

type PageRenderer interface {
	Render(w io.Writer, input page.Input) error
}

type CLIOutput interface {
	PrintHeader(msg string)
	PrintStep(msg string, args ...any)
	PrintSuccess(msg string, args ...any)
	PrintWarning(msg string, args ...any)
	PrintError(msg string, args ...any)
	PrintFile(path string)
	PrintDone(msg string)

	Green(text string) string
	Yellow(text string) string
	Red(text string) string
	Gray(text string) string
	Writer() io.Writer
	ErrWriter() io.Writer
}

type FileSystem = fs.FileSystem
