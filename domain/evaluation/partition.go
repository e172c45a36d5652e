package evaluation

import (
	"fmt"
	"strings"

	"evalreport/domain/core"
)

// ColumnRange is the inclusive span [Start, End] of one project block.
// End is the index of the block's sentinel column.
type ColumnRange struct {
	Position int `json:"position"`
	Start    int `json:"start"`
	End      int `json:"end"`
}

// Width returns the number of columns in the range
func (r ColumnRange) Width() int {
	return r.End - r.Start + 1
}

func (r ColumnRange) String() string {
	return fmt.Sprintf("block %d [%d..%d]", r.Position, r.Start, r.End)
}

// Partition derives the project blocks from the header. The first block
// starts right after the anchor column; every header starting with the
// sentinel prefix closes the current block and opens the next one.
// Sentinels left of the anchor are ignored. A header without sentinels yields
// no ranges and no error; a missing anchor is an error.
func Partition(columns []string, schema Schema) ([]ColumnRange, error) {
	anchor := -1
	for i, col := range columns {
		if col == schema.CategoryColumn {
			anchor = i
			break
		}
	}
	if anchor < 0 {
		return nil, core.NewColumnNotFoundError(schema.CategoryColumn)
	}

	var ranges []ColumnRange
	start := anchor + 1
	for i := start; i < len(columns); i++ {
		if !strings.HasPrefix(columns[i], schema.SentinelPrefix) {
			continue
		}
		ranges = append(ranges, ColumnRange{Position: len(ranges), Start: start, End: i})
		start = i + 1
	}
	return ranges, nil
}
