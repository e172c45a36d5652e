package dataset

import (
	"math"
	"strconv"
	"strings"

	"evalreport/domain/core"
)

// CellKind is the storage type of one cell as delivered by intake
type CellKind int

const (
	CellEmpty CellKind = iota
	CellText
	CellNumber
)

func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	default:
		return "empty"
	}
}

// Cell holds one value. Raw always carries the source text so that no
// information is lost when a cell is classified as a number.
type Cell struct {
	Kind   CellKind
	Raw    string
	Number float64
}

// EmptyCell returns a missing value
func EmptyCell() Cell {
	return Cell{Kind: CellEmpty}
}

// TextCell returns a text value; the empty string becomes an empty cell
func TextCell(s string) Cell {
	if s == "" {
		return EmptyCell()
	}
	return Cell{Kind: CellText, Raw: s}
}

// NumberCell returns a numeric value with its source representation
func NumberCell(raw string, n float64) Cell {
	if raw == "" {
		raw = strconv.FormatFloat(n, 'f', -1, 64)
	}
	return Cell{Kind: CellNumber, Raw: raw, Number: n}
}

// ParseCell classifies raw source text. Whitespace-only text is empty,
// finite numbers become number cells, everything else stays text.
func ParseCell(raw string) Cell {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return EmptyCell()
	}
	if n, err := strconv.ParseFloat(trimmed, 64); err == nil && !math.IsNaN(n) && !math.IsInf(n, 0) {
		return NumberCell(raw, n)
	}
	return TextCell(raw)
}

// IsEmpty reports whether the cell carries no value
func (c Cell) IsEmpty() bool {
	return c.Kind == CellEmpty
}

// String returns the source text of the cell
func (c Cell) String() string {
	return c.Raw
}

// Dataset is an ordered set of uniquely named columns and rows of cells.
// Column order is the only structural signal available to consumers.
type Dataset struct {
	Name    string
	Columns []string
	Rows    [][]Cell
}

// New builds a dataset, rejecting duplicate column names and padding short
// rows with empty cells. Cells beyond the header width are dropped.
func New(name string, columns []string, rows [][]Cell) (*Dataset, error) {
	seen := make(map[string]bool, len(columns))
	for _, col := range columns {
		if seen[col] {
			return nil, core.NewDuplicateColumnError(col)
		}
		seen[col] = true
	}

	normalized := make([][]Cell, len(rows))
	for i, row := range rows {
		out := make([]Cell, len(columns))
		copy(out, row)
		normalized[i] = out
	}

	return &Dataset{Name: name, Columns: columns, Rows: normalized}, nil
}

// FromStrings builds a dataset from raw text rows, classifying each cell with ParseCell
func FromStrings(name string, columns []string, rows [][]string) (*Dataset, error) {
	cells := make([][]Cell, len(rows))
	for i, row := range rows {
		cells[i] = make([]Cell, len(row))
		for j, raw := range row {
			cells[i][j] = ParseCell(raw)
		}
	}
	return New(name, columns, cells)
}

// ColumnIndex returns the position of the column with exactly this name
func (d *Dataset) ColumnIndex(name string) (int, error) {
	for i, col := range d.Columns {
		if col == name {
			return i, nil
		}
	}
	return -1, core.NewColumnNotFoundError(name)
}

// NumRows returns the number of data rows
func (d *Dataset) NumRows() int {
	return len(d.Rows)
}

// UniqueHeaders renames repeated headers by appending ".1", ".2", ... to the
// second and later occurrences, skipping names that are already taken.
func UniqueHeaders(headers []string) []string {
	out := make([]string, len(headers))
	taken := make(map[string]bool, len(headers))
	for _, h := range headers {
		taken[h] = true
	}

	counts := make(map[string]int, len(headers))
	seen := make(map[string]bool, len(headers))
	for i, h := range headers {
		if !seen[h] {
			seen[h] = true
			out[i] = h
			continue
		}
		for {
			counts[h]++
			candidate := h + "." + strconv.Itoa(counts[h])
			if !taken[candidate] {
				taken[candidate] = true
				out[i] = candidate
				break
			}
		}
	}
	return out
}
