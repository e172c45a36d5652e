package excel

import (
	"context"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"evalreport/domain/evaluation"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Exporter writes result rows to a single-sheet workbook
type Exporter struct {
	config ExportConfig
}

// NewExporter creates a spreadsheet exporter
func NewExporter(config ExportConfig) *Exporter {
	if config.SheetName == "" {
		config.SheetName = DefaultExportConfig().SheetName
	}
	return &Exporter{config: config}
}

// ContentType is the MIME type of the produced file
func (e *Exporter) ContentType() string { return xlsxContentType }

// FileExtension is the extension of the produced file
func (e *Exporter) FileExtension() string { return ".xlsx" }

// Export writes rows in the given order. The first column is the index,
// starting at indexStart.
func (e *Exporter) Export(ctx context.Context, w io.Writer, rows []evaluation.ResultRow, indexStart int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := e.config.SheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return fmt.Errorf("failed to name sheet: %w", err)
	}

	if err := f.SetSheetRow(sheet, "A1", ptrSlice(e.headerRow())); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, ptrSlice(e.valueRow(row, indexStart+i))); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func (e *Exporter) headerRow() []interface{} {
	h := e.config.Headers
	out := []interface{}{h.Index, h.Project, h.Category}
	if e.config.IncludeProjectName {
		out = append(out, h.ProjectName)
	}
	return append(out, h.BonusedScore, h.Merit, h.Tally, h.Evaluations)
}

func (e *Exporter) valueRow(row evaluation.ResultRow, index int) []interface{} {
	out := []interface{}{index, row.Identifier, row.Category}
	if e.config.IncludeProjectName {
		out = append(out, row.ProjectName)
	}

	var merit interface{} = row.Merit
	if row.MeritScore != nil {
		merit = *row.MeritScore
	}
	return append(out, row.BonusedScore, merit, row.Tally, row.Evaluations)
}

func ptrSlice(values []interface{}) *[]interface{} {
	return &values
}
