package services

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dwellfront/dashboard-service/internal/utils"
)

func sampleView() ExportView {
	return ExportView{
		Feature: "maintenance",
		Columns: []string{"ID", "Title", "Status"},
		Rows: [][]any{
			{"1", "Leaky faucet", "OPEN"},
			{"2", "Broken heater", "COMPLETED"},
		},
		Summary: []SummaryRow{
			{Label: "Total requests", Value: 2},
			{Label: "Completion rate (%)", Value: 50.0},
		},
	}
}

func TestExportWritesBothFormats(t *testing.T) {
	dir := t.TempDir()
	svc := NewExportService(dir)
	svc.now = func() time.Time {
		return time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)
	}

	files, err := svc.Export(context.Background(), sampleView())
	require.NoError(t, err)
	require.Equal(t, []string{"maintenance-2026-08-29.xlsx", "maintenance-2026-08-29.pdf"}, files)

	for _, name := range files {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestExportRejectsEmptyView(t *testing.T) {
	svc := NewExportService(t.TempDir())

	view := sampleView()
	view.Rows = nil

	_, err := svc.ExportXLSX(context.Background(), view)
	require.ErrorIs(t, err, utils.ErrEmptyExport)

	_, err = svc.ExportPDF(context.Background(), view)
	require.ErrorIs(t, err, utils.ErrEmptyExport)
}

func TestExportHonorsCanceledContext(t *testing.T) {
	dir := t.TempDir()
	svc := NewExportService(dir)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.ExportXLSX(ctx, sampleView())
	require.ErrorIs(t, err, context.Canceled)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "canceled export must not leave files behind")
}
