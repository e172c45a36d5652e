package evaluation

import (
	"testing"

	"evalreport/adapters/datareadiness/coercer"
	"evalreport/domain/core"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineBonusedMeanScenario(t *testing.T) {
	ds := mustDataset(t, simpleColumns, [][]string{
		{"Ana", "A", "Robot", "8", "sim", "", "", "", "", ""},
		{"Bruno", "A", "Robot", "9", "não", "", "", "", "", ""},
	})

	outcome, err := newTestEngine().Score(ds)
	require.NoError(t, err)
	require.Len(t, outcome.Rows, 1)

	row := outcome.Rows[0]
	assert.Equal(t, 1, row.Index)
	assert.Equal(t, "Project 01", row.Identifier)
	assert.Equal(t, "A", row.Category)
	assert.Equal(t, "Robot", row.ProjectName)
	assert.Equal(t, 8.9, row.BonusedScore)
	assert.Equal(t, "—", row.Merit)
	assert.Equal(t, "1 Yes / 1 No", row.Tally)
	assert.Equal(t, 2, row.Evaluations)

	assert.Equal(t, RunStats{Rows: 2, Ranges: 2, Evaluated: 2, Discarded: 2, Projects: 1}, outcome.Stats)
}

func TestEngineDropsUnscoredProject(t *testing.T) {
	ds := mustDataset(t, simpleColumns, [][]string{
		{"Ana", "A", "Robot", "8", "sim", "", "Drone", "n/a", "sim", "skipped"},
	})

	outcome, err := newTestEngine().Score(ds)
	require.NoError(t, err)
	require.Len(t, outcome.Rows, 1)
	assert.Equal(t, "Robot", outcome.Rows[0].ProjectName)
}

func TestEngineResolvesMajorityName(t *testing.T) {
	ds := mustDataset(t, simpleColumns, [][]string{
		{"Ana", "A", "Robot Arm", "8", "não", ""},
		{"Bia", "A", "RoboArm", "7", "não", ""},
		{"Caio", "A", "Robot Arm", "9", "não", ""},
	})

	outcome, err := newTestEngine().Score(ds)
	require.NoError(t, err)
	require.Len(t, outcome.Rows, 1)
	assert.Equal(t, "Robot Arm", outcome.Rows[0].ProjectName)
	assert.Equal(t, "3 No", outcome.Rows[0].Tally)
	assert.Equal(t, 8.0, outcome.Rows[0].BonusedScore)
}

func TestEngineNumberingHasNoGaps(t *testing.T) {
	columns := []string{
		"Full Name", "Project Category",
		"Score", "Comments: 1",
		"Score.1", "Comments: 2",
		"Score.2", "Comments: 3",
	}
	ds := mustDataset(t, columns, [][]string{
		{"Ana", "B", "6", "", "", "", "8", ""},
		{"Bia", "A", "", "", "7", "", "", ""},
	})

	outcome, err := newTestEngine().Score(ds)
	require.NoError(t, err)
	require.Len(t, outcome.Rows, 3)

	assert.Equal(t, "A", outcome.Rows[0].Category)
	assert.Equal(t, "Project 01", outcome.Rows[0].Identifier)
	assert.Equal(t, 7.0, outcome.Rows[0].BonusedScore)

	assert.Equal(t, "B", outcome.Rows[1].Category)
	assert.Equal(t, "Project 01", outcome.Rows[1].Identifier)
	assert.Equal(t, 6.0, outcome.Rows[1].BonusedScore)

	assert.Equal(t, "B", outcome.Rows[2].Category)
	assert.Equal(t, "Project 02", outcome.Rows[2].Identifier)
	assert.Equal(t, 8.0, outcome.Rows[2].BonusedScore)
	assert.Equal(t, 3, outcome.Rows[2].Index)
}

func TestEngineIdempotentAndOrderIndependent(t *testing.T) {
	rows := [][]string{
		{"Ana", "A", "Robot", "8", "não", "", "Drone", "6", "sim", ""},
		{"Bia", "B", "Boat", "7", "não", "", "Kite", "5", "não", ""},
		{"Caio", "A", "Robot", "9", "não", "", "Drone", "4", "sim", ""},
	}
	reversed := [][]string{rows[2], rows[1], rows[0]}

	engine := newTestEngine()
	first, err := engine.Score(mustDataset(t, simpleColumns, rows))
	require.NoError(t, err)
	second, err := engine.Score(mustDataset(t, simpleColumns, rows))
	require.NoError(t, err)
	third, err := engine.Score(mustDataset(t, simpleColumns, reversed))
	require.NoError(t, err)

	assert.Equal(t, first.Rows, second.Rows)
	assert.Equal(t, first.Rows, third.Rows)
}

func TestEngineSkipsRowsWithoutCategory(t *testing.T) {
	ds := mustDataset(t, simpleColumns, [][]string{
		{"Ana", "", "Robot", "8", "sim", ""},
		{"Bia", "A", "Robot", "6", "não", ""},
	})

	outcome, err := newTestEngine().Score(ds)
	require.NoError(t, err)
	require.Len(t, outcome.Rows, 1)
	assert.Equal(t, 6.0, outcome.Rows[0].BonusedScore)
	assert.Equal(t, 1, outcome.Stats.SkippedRows)
}

func TestEngineMissingAnchor(t *testing.T) {
	ds := mustDataset(t, []string{"Full Name", "Category", "Score", "Comments:"}, [][]string{{"Ana", "A", "8", ""}})

	outcome, err := newTestEngine().Score(ds)
	assert.Nil(t, outcome)
	assert.ErrorIs(t, err, core.ErrColumnNotFound)
}

func TestEngineNoSentinels(t *testing.T) {
	ds := mustDataset(t, []string{"Full Name", "Project Category", "Score"}, [][]string{{"Ana", "A", "8"}})

	outcome, err := newTestEngine().Score(ds)
	require.NoError(t, err)
	assert.Empty(t, outcome.Ranges)
	assert.Empty(t, outcome.Rows)
}

func TestEngineMeritAverage(t *testing.T) {
	ds := mustDataset(t, meritColumns, [][]string{
		{"Ana", "A", "Robot", "8", "6", "7", "9", "não", ""},
		{"Bia", "A", "Robot", "10", "10", "10", "", "não", ""},
		{"Caio", "A", "Robot", "9", "9", "9", "9", "não", ""},
	})

	outcome, err := newTestEngine().Score(ds)
	require.NoError(t, err)
	require.Len(t, outcome.Rows, 1)

	row := outcome.Rows[0]
	require.NotNil(t, row.MeritScore)
	assert.Equal(t, 8.25, *row.MeritScore)
	assert.Equal(t, "8.25", row.Merit)
	assert.Equal(t, 3, row.Evaluations)
}

func TestEnginePortugueseExport(t *testing.T) {
	columns := []string{
		"Carimbo de data/hora", "Nome Completo", "Categoria do Projeto",
		"Nome do Projeto", "Clareza", "Relevância", "Organização", "Resultados", "Há igualdade de gênero?", "Comentários: projeto 1",
	}
	ds := mustDataset(t, columns, [][]string{
		{"t", "Ana", "Inovação", "Robô", "8", "8", "8", "8", "Sim", ""},
		{"t", "Bia", "Inovação", "Robô", "6", "6", "6", "6", "Não", ""},
	})

	engine := NewEngine(PortugueseSchema(), coercer.NewTypeCoercer(coercer.DefaultCoercionConfig()))
	outcome, err := engine.Score(ds)
	require.NoError(t, err)
	require.Len(t, outcome.Rows, 1)

	row := outcome.Rows[0]
	assert.Equal(t, "Projeto 01", row.Identifier)
	assert.Equal(t, 7.4, row.BonusedScore)
	assert.Equal(t, "1 Sim / 1 Não", row.Tally)
	assert.Equal(t, "7", row.Merit)
}

func TestEngineRoundsHalfToEven(t *testing.T) {
	ds := mustDataset(t, simpleColumns, [][]string{
		{"Ana", "A", "Robot", "7", "não", "7.25", "", "", "", ""},
	})

	outcome, err := newTestEngine().Score(ds)
	require.NoError(t, err)
	require.Len(t, outcome.Rows, 1)
	assert.Equal(t, 7.12, outcome.Rows[0].BonusedScore)
}
