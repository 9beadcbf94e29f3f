package exporter

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	apperrors "github.com/Mansi358721/netflix-titles/internal/errors"
)

// maxSheetName is Excel's limit on sheet name length
const maxSheetName = 31

// WorkbookExporter writes summary tables to an XLSX workbook, one sheet per
// table in the order given.
type WorkbookExporter struct {
	logger *slog.Logger
}

// NewWorkbookExporter creates a workbook exporter
func NewWorkbookExporter(logger *slog.Logger) *WorkbookExporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &WorkbookExporter{logger: logger}
}

// Export writes tables to path, replacing any existing workbook
func (e *WorkbookExporter) Export(path string, tables []Table) error {
	if len(tables) == 0 {
		return apperrors.NewAppValidationError("no tables to export").WithContext("path", path)
	}

	f := excelize.NewFile()
	defer f.Close()

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return apperrors.NewStorageError("failed to create header style", err)
	}

	defaultSheet := f.GetSheetName(0)
	for i, t := range tables {
		name := sheetName(t.Name)
		if i == 0 {
			if err := f.SetSheetName(defaultSheet, name); err != nil {
				return apperrors.NewStorageError("failed to rename sheet", err).WithContext("sheet", name)
			}
		} else if _, err := f.NewSheet(name); err != nil {
			return apperrors.NewStorageError("failed to add sheet", err).WithContext("sheet", name)
		}

		if err := writeSheet(f, name, t, headerStyle); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return apperrors.NewStorageError("failed to create directory", err).WithContext("path", path)
	}
	if err := f.SaveAs(path); err != nil {
		return apperrors.NewStorageError("failed to save workbook", err).WithContext("path", path)
	}

	e.logger.Info("Summary workbook written",
		slog.String("path", path),
		slog.Int("sheets", len(tables)))
	return nil
}

func writeSheet(f *excelize.File, sheet string, t Table, headerStyle int) error {
	header := make([]interface{}, len(t.Headers))
	for i, h := range t.Headers {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return apperrors.NewStorageError("failed to write header row", err).WithContext("sheet", sheet)
	}
	if err := f.SetRowStyle(sheet, 1, 1, headerStyle); err != nil {
		return apperrors.NewStorageError("failed to style header row", err).WithContext("sheet", sheet)
	}

	for i, row := range t.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("cell name for row %d: %w", i+2, err)
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return apperrors.NewStorageError("failed to write row", err).WithContext("sheet", sheet)
		}
	}

	if len(t.Headers) > 0 {
		last, err := excelize.ColumnNumberToName(len(t.Headers))
		if err != nil {
			return fmt.Errorf("column name: %w", err)
		}
		if err := f.SetColWidth(sheet, "A", last, 18); err != nil {
			return apperrors.NewStorageError("failed to size columns", err).WithContext("sheet", sheet)
		}
	}
	return nil
}

func sheetName(name string) string {
	if len(name) > maxSheetName {
		return name[:maxSheetName]
	}
	if name == "" {
		return "Sheet"
	}
	return name
}
