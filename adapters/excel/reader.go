package excel

import (
	"bufio"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"evalreport/domain/core"
	"evalreport/domain/dataset"
)

const utf8BOM = "\ufeff"

// DataReader handles reading Excel and CSV files
type DataReader struct {
	logger *zap.Logger
}

// NewDataReader creates a new data reader that handles both Excel and CSV files
func NewDataReader(logger *zap.Logger) *DataReader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DataReader{logger: logger}
}

// ReadFile opens path and reads it as a dataset
func (r *DataReader) ReadFile(ctx context.Context, path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return r.ReadDataset(ctx, filepath.Base(path), f)
}

// ReadDataset reads a CSV or XLSX stream; name selects the format.
func (r *DataReader) ReadDataset(ctx context.Context, name string, src io.Reader) (*dataset.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fileType, ok := DetectFileType(name)
	if !ok {
		return nil, core.NewUnsupportedFormatError(name)
	}

	start := time.Now()
	var (
		rows [][]string
		err  error
	)
	switch fileType {
	case FileTypeCSV:
		rows, err = readCSVRows(src)
	case FileTypeXLSX:
		rows, err = readExcelRows(src)
	}
	if err != nil {
		if core.IsInputError(err) {
			return nil, err
		}
		return nil, core.NewMalformedFileError(name, err)
	}

	ds, err := r.processRows(name, rows)
	if err != nil {
		return nil, err
	}

	r.logger.Debug("dataset read",
		zap.String("source", name),
		zap.String("format", string(fileType)),
		zap.Int("columns", len(ds.Columns)),
		zap.Int("rows", ds.NumRows()),
		zap.Duration("elapsed", time.Since(start)),
	)
	return ds, nil
}

// readCSVRows reads every record; ragged rows are allowed.
func readCSVRows(src io.Reader) ([][]string, error) {
	reader := csv.NewReader(bufio.NewReader(src))
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV file: %w", err)
	}
	return rows, nil
}

// readExcelRows reads the first worksheet with raw (unformatted) values.
func readExcelRows(src io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(src)
	if err != nil {
		return nil, fmt.Errorf("failed to open Excel file: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, core.ErrEmptyDataset
	}

	rows, err := f.GetRows(sheets[0], excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}

// processRows converts raw string rows into a Dataset. Header text is kept
// verbatim apart from a leading byte order mark; repeated headers get ".N"
// suffixes.
func (r *DataReader) processRows(name string, rows [][]string) (*dataset.Dataset, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: %s", core.ErrEmptyDataset, name)
	}

	headers := make([]string, len(rows[0]))
	copy(headers, rows[0])
	headers[0] = strings.TrimPrefix(headers[0], utf8BOM)

	unique := dataset.UniqueHeaders(headers)
	for i := range headers {
		if unique[i] != headers[i] {
			r.logger.Warn("duplicate column header renamed",
				zap.String("source", name),
				zap.String("header", headers[i]),
				zap.String("renamed", unique[i]),
			)
		}
	}

	dataRows := make([][]dataset.Cell, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		cells := make([]dataset.Cell, len(row))
		for j, raw := range row {
			cells[j] = dataset.ParseCell(raw)
		}
		dataRows = append(dataRows, cells)
	}

	return dataset.New(name, unique, dataRows)
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
