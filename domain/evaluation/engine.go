package evaluation

import (
	"evalreport/domain/dataset"
)

// RunStats counts what happened during one scoring pass.
type RunStats struct {
	Rows        int `json:"rows"`
	SkippedRows int `json:"skipped_rows"`
	Ranges      int `json:"ranges"`
	Evaluated   int `json:"evaluated"`
	Discarded   int `json:"discarded"`
	Projects    int `json:"projects"`
}

// Outcome is the full result of scoring a dataset.
type Outcome struct {
	Ranges   []ColumnRange     `json:"ranges"`
	Layouts  []BlockLayout     `json:"-"`
	Projects []NumberedProject `json:"projects"`
	Rows     []ResultRow       `json:"rows"`
	Stats    RunStats          `json:"stats"`
}

// Engine runs partition, extraction, aggregation and numbering. It holds no
// per-run state and may be shared.
type Engine struct {
	schema  Schema
	coercer Coercer
}

// NewEngine creates an engine for the given schema and coercion policy
func NewEngine(schema Schema, coercer Coercer) *Engine {
	return &Engine{schema: schema, coercer: coercer}
}

// Schema returns the schema the engine was built with
func (e *Engine) Schema() Schema {
	return e.schema
}

// Score computes the ordered result rows for ds. A missing anchor column
// aborts the run; everything else degrades per field.
func (e *Engine) Score(ds *dataset.Dataset) (*Outcome, error) {
	ranges, err := Partition(ds.Columns, e.schema)
	if err != nil {
		return nil, err
	}
	catIdx, err := ds.ColumnIndex(e.schema.CategoryColumn)
	if err != nil {
		return nil, err
	}

	layouts := ResolveLayouts(ds.Columns, ranges, e.schema)
	extractor := NewExtractor(e.schema, e.coercer)
	acc := NewAccumulator(e.schema)

	runStats := RunStats{Rows: ds.NumRows(), Ranges: len(ranges)}
	for _, row := range ds.Rows {
		category := row[catIdx].Raw
		if category == "" {
			runStats.SkippedRows++
			continue
		}
		for _, layout := range layouts {
			if acc.Add(category, extractor.Extract(row, layout)) {
				runStats.Evaluated++
			} else {
				runStats.Discarded++
			}
		}
	}

	numbered := AssignIdentifiers(acc.Reduce(), e.schema.Labels.Project)
	rows := Order(numbered, e.schema.Labels)
	runStats.Projects = len(rows)

	return &Outcome{
		Ranges:   ranges,
		Layouts:  layouts,
		Projects: numbered,
		Rows:     rows,
		Stats:    runStats,
	}, nil
}
