package ports

import (
	"context"
	"io"

	"evalreport/domain/dataset"
)

// DatasetReaderPort turns an uploaded tabular file into a Dataset.
// Implementations must keep header strings and column order exactly and
// must not coerce cell values.
type DatasetReaderPort interface {
	ReadDataset(ctx context.Context, name string, r io.Reader) (*dataset.Dataset, error)
}
