package evaluation

import (
	"fmt"
	"strings"

	"github.com/montanaflynn/stats"

	"evalreport/domain/dataset"
)

// Coercer converts cells to numbers.
type Coercer interface {
	// Numeric returns the cell as a number, or false when it is missing or
	// not numeric.
	Numeric(cell dataset.Cell) (float64, bool)
	// Strict parses the cell as a number and fails on anything else,
	// including empty cells.
	Strict(cell dataset.Cell) (float64, error)
}

// RawEvaluation is one evaluator's judgment of one project block.
type RawEvaluation struct {
	Position     int
	ProjectName  string
	OverallScore float64
	GenderAnswer string
	BonusedScore float64
	MeritAverage *float64
}

// Evaluated reports whether the record counts. An overall score of exactly
// zero means "not evaluated", which also swallows a genuine zero score.
func (r RawEvaluation) Evaluated() bool {
	return r.OverallScore != 0
}

// Extractor builds RawEvaluations from rows.
type Extractor struct {
	schema  Schema
	coercer Coercer
	yes     string
}

// NewExtractor creates an extractor for the given schema
func NewExtractor(schema Schema, coercer Coercer) *Extractor {
	return &Extractor{
		schema:  schema,
		coercer: coercer,
		yes:     NormalizeAnswer(schema.Answers.Yes),
	}
}

// Extract reads one block of one row. Missing fields degrade to defaults and
// never fail the row.
func (e *Extractor) Extract(row []dataset.Cell, layout BlockLayout) RawEvaluation {
	eval := RawEvaluation{
		Position:     layout.Range.Position,
		OverallScore: e.overallScore(row, layout.Range),
	}

	if col, ok := layout.Column(RoleProjectName); ok {
		eval.ProjectName = strings.TrimSpace(cellText(row, col))
	} else {
		eval.ProjectName = fmt.Sprintf("%s %d", e.schema.Labels.Project, layout.Range.Position+1)
	}

	if col, ok := layout.Column(RoleGenderEquality); ok {
		eval.GenderAnswer = NormalizeAnswer(cellText(row, col))
	} else {
		eval.GenderAnswer = NormalizeAnswer(e.schema.Answers.Default)
	}

	eval.BonusedScore = eval.OverallScore
	if eval.GenderAnswer == e.yes {
		eval.BonusedScore = eval.OverallScore * e.schema.BonusFactor
	}

	eval.MeritAverage = e.meritAverage(row, layout)
	return eval
}

// overallScore is the mean of every numeric cell in the block, sentinel
// included, or 0 when none coerce.
func (e *Extractor) overallScore(row []dataset.Cell, r ColumnRange) float64 {
	values := make(stats.Float64Data, 0, r.Width())
	for col := r.Start; col <= r.End && col < len(row); col++ {
		if v, ok := e.coercer.Numeric(row[col]); ok {
			values = append(values, v)
		}
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return 0
	}
	return mean
}

// meritAverage needs all four sub-scores; one missing column or unparsable
// cell leaves the average undefined.
func (e *Extractor) meritAverage(row []dataset.Cell, layout BlockLayout) *float64 {
	values := make(stats.Float64Data, 0, len(MeritRoles))
	for _, role := range MeritRoles {
		col, ok := layout.Column(role)
		if !ok || col >= len(row) {
			return nil
		}
		v, err := e.coercer.Strict(row[col])
		if err != nil {
			return nil
		}
		values = append(values, v)
	}
	mean, err := stats.Mean(values)
	if err != nil {
		return nil
	}
	return &mean
}

func cellText(row []dataset.Cell, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return row[col].Raw
}
