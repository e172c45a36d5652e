package ports

import (
	"context"
	"io"

	"evalreport/domain/evaluation"
)

// ExporterPort serializes ordered result rows. Rows are written in the given
// order; the index column starts at indexStart.
type ExporterPort interface {
	Export(ctx context.Context, w io.Writer, rows []evaluation.ResultRow, indexStart int) error
	ContentType() string
	FileExtension() string
}
