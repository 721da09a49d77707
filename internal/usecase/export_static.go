package usecase

import (
	"context"
	"fmt"

	"github.com/3-lines-studio/launchboard/internal/types"
)

type ExportOutput struct {
	Props types.StaticProps
	Error error
}

// ExportService is the build-time data loader on its own: it fetches the
// launches and shapes them as page props without rendering anything.
type ExportService struct {
	source LaunchSource
}

func NewExportService(source LaunchSource) *ExportService {
	return &ExportService{
		source: source,
	}
}

func (s *ExportService) ExportStatic(ctx context.Context) ExportOutput {
	launches, err := s.source.FetchLaunches(ctx)
	if err != nil {
		return ExportOutput{
			Error: fmt.Errorf("failed to load static props: %w", err),
		}
	}

	return ExportOutput{
		Props: types.NewStaticProps(launches),
	}
}
