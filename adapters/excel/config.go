package excel

import (
	"evalreport/domain/report"
)

// ExportConfig holds configuration for the spreadsheet export
type ExportConfig struct {
	SheetName          string               `json:"sheet_name" validate:"required,max=31"`
	IncludeProjectName bool                 `json:"include_project_name"`
	Headers            report.ColumnHeaders `json:"headers"`
}

// DefaultExportConfig returns sensible defaults for the spreadsheet export
func DefaultExportConfig() ExportConfig {
	return ExportConfig{
		SheetName:          "Results",
		IncludeProjectName: false,
		Headers:            report.DefaultColumnHeaders(),
	}
}
