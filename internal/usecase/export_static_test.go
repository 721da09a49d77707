package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/3-lines-studio/launchboard/internal/types"
)

func TestExportStatic(t *testing.T) {
	launches := []types.Launch{{ID: "1", MissionName: "FalconSat"}}
	svc := NewExportService(&stubSource{launches: launches})

	out := svc.ExportStatic(context.Background())
	require.NoError(t, out.Error)
	assert.Equal(t, launches, out.Props.Props.Launches)
}

func TestExportStaticNilBecomesEmpty(t *testing.T) {
	svc := NewExportService(&stubSource{})

	out := svc.ExportStatic(context.Background())
	require.NoError(t, out.Error)
	assert.NotNil(t, out.Props.Props.Launches)
	assert.Empty(t, out.Props.Props.Launches)
}

func TestExportStaticError(t *testing.T) {
	boom := errors.New("boom")
	svc := NewExportService(&stubSource{err: boom})

	out := svc.ExportStatic(context.Background())
	assert.ErrorIs(t, out.Error, boom)
}
