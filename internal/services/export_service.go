package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/natefinch/atomic"
	"github.com/xuri/excelize/v2"

	"github.com/dwellfront/dashboard-service/internal/listview"
	"github.com/dwellfront/dashboard-service/internal/utils"
)

type SummaryRow struct {
	Label string
	Value any
}

// ExportView is the feature-agnostic input to the export writers: a
// detail table, a summary block, and an optional monthly projection.
type ExportView struct {
	Feature    string
	Columns    []string
	Rows       [][]any
	Summary    []SummaryRow
	Projection []listview.SeriesPoint
}

type ExportService struct {
	dir string
	now func() time.Time
}

func NewExportService(dir string) *ExportService {
	return &ExportService{dir: dir, now: time.Now}
}

func (s *ExportService) filename(feature, ext string) string {
	return fmt.Sprintf("%s-%s.%s", feature, s.now().Format("2006-01-02"), ext)
}

func (s *ExportService) validate(view ExportView) error {
	if view.Feature == "" || len(view.Columns) == 0 {
		return fmt.Errorf("export view for %q is malformed: %w", view.Feature, utils.ErrEmptyExport)
	}
	if len(view.Rows) == 0 {
		return fmt.Errorf("nothing to export for %q: %w", view.Feature, utils.ErrEmptyExport)
	}
	return nil
}

// ExportXLSX writes a workbook with Summary, Details, and (when a
// projection is present) Projection sheets, and returns the generated
// filename. The file lands atomically so a canceled export never
// leaves a partial download behind.
func (s *ExportService) ExportXLSX(ctx context.Context, view ExportView) (string, error) {
	if err := s.validate(view); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	const summarySheet = "Summary"
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return "", err
	}
	for i, row := range view.Summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetCellValue(summarySheet, cell, row.Label); err != nil {
			return "", err
		}
		cell, _ = excelize.CoordinatesToCellName(2, i+1)
		if err := f.SetCellValue(summarySheet, cell, row.Value); err != nil {
			return "", err
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	const detailSheet = "Details"
	if _, err := f.NewSheet(detailSheet); err != nil {
		return "", err
	}
	for col, name := range view.Columns {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		if err := f.SetCellValue(detailSheet, cell, name); err != nil {
			return "", err
		}
	}
	for rowIdx, row := range view.Rows {
		for col, v := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err := f.SetCellValue(detailSheet, cell, v); err != nil {
				return "", err
			}
		}
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(view.Projection) > 0 {
		const projSheet = "Projection"
		if _, err := f.NewSheet(projSheet); err != nil {
			return "", err
		}
		_ = f.SetCellValue(projSheet, "A1", "Month")
		_ = f.SetCellValue(projSheet, "B1", "Amount")
		for i, pt := range view.Projection {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			_ = f.SetCellValue(projSheet, cell, pt.X)
			cell, _ = excelize.CoordinatesToCellName(2, i+2)
			_ = f.SetCellValue(projSheet, cell, pt.Y)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return "", fmt.Errorf("serialize workbook: %w", err)
	}

	name := s.filename(view.Feature, "xlsx")
	if err := atomic.WriteFile(filepath.Join(s.dir, name), buf); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return name, nil
}

// ExportPDF writes a one-page-per-section report and returns the
// generated filename.
func (s *ExportService) ExportPDF(ctx context.Context, view ExportView) (string, error) {
	if err := s.validate(view); err != nil {
		return "", err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetFont("Helvetica", "B", 14)
	pdf.AddPage()
	pdf.Cell(0, 10, fmt.Sprintf("%s report %s", view.Feature, s.now().Format("2006-01-02")))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range view.Summary {
		pdf.Cell(60, 6, row.Label)
		pdf.Cell(0, 6, fmt.Sprint(row.Value))
		pdf.Ln(6)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	pdf.Ln(6)
	colWidth := 270.0 / float64(len(view.Columns))
	pdf.SetFont("Helvetica", "B", 9)
	for _, name := range view.Columns {
		pdf.CellFormat(colWidth, 6, name, "1", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, row := range view.Rows {
		for _, v := range row {
			pdf.CellFormat(colWidth, 6, fmt.Sprint(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return "", fmt.Errorf("serialize pdf: %w", err)
	}

	name := s.filename(view.Feature, "pdf")
	if err := atomic.WriteFile(filepath.Join(s.dir, name), &buf); err != nil {
		return "", fmt.Errorf("write %s: %w", name, err)
	}
	return name, nil
}

// Export produces both formats and returns the filenames.
func (s *ExportService) Export(ctx context.Context, view ExportView) ([]string, error) {
	xlsxName, err := s.ExportXLSX(ctx, view)
	if err != nil {
		return nil, err
	}
	pdfName, err := s.ExportPDF(ctx, view)
	if err != nil {
		return nil, err
	}
	return []string{xlsxName, pdfName}, nil
}
