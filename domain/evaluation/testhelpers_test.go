package evaluation

import (
	"testing"

	"evalreport/adapters/datareadiness/coercer"
	"evalreport/domain/dataset"

	"github.com/stretchr/testify/require"
)

// simpleColumns is a two-block export: name, score, gender answer, comments.
var simpleColumns = []string{
	"Full Name", "Project Category",
	"Project name (1)", "Score (1)", "Gender equality (1)", "Comments: project 1",
	"Project name (2)", "Score (2)", "Gender equality (2)", "Comments: project 2",
}

func newTestEngine() *Engine {
	return NewEngine(DefaultSchema(), coercer.NewTypeCoercer(coercer.DefaultCoercionConfig()))
}

func mustDataset(t *testing.T, columns []string, rows [][]string) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.FromStrings("test", columns, rows)
	require.NoError(t, err)
	return ds
}

func ptr(v float64) *float64 { return &v }
