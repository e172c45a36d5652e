package ports

import (
	"io"

	"evalreport/domain/report"
)

// PresenterPort renders a report for display. It only reads the report.
type PresenterPort interface {
	Present(w io.Writer, r *report.Report) error
	ContentType() string
}
