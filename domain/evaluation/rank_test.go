package evaluation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func project(category string, position int, score float64) AggregateProject {
	return AggregateProject{Key: Key{Category: category, Position: position}, BonusedMean: score, Contributors: 1}
}

func TestAssignIdentifiersFollowsBlockOrder(t *testing.T) {
	projects := []AggregateProject{
		project("B", 2, 5),
		project("A", 1, 7),
		project("B", 0, 9),
		project("A", 0, 6),
	}

	numbered := AssignIdentifiers(projects, "Project")
	require.Len(t, numbered, 4)

	// output keeps input order
	assert.Equal(t, "Project 02", numbered[0].Identifier)
	assert.Equal(t, "Project 02", numbered[1].Identifier)
	assert.Equal(t, "Project 01", numbered[2].Identifier)
	assert.Equal(t, "Project 01", numbered[3].Identifier)

	// the input is untouched
	assert.Equal(t, 2, projects[0].Position)
}

func TestAssignIdentifiersStableUnderPermutation(t *testing.T) {
	base := []AggregateProject{project("C", 0, 1), project("C", 3, 1), project("C", 7, 1)}
	permutations := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 2, 0}, {2, 0, 1}}

	for _, perm := range permutations {
		input := make([]AggregateProject, len(perm))
		for i, j := range perm {
			input[i] = base[j]
		}
		ids := make(map[int]string)
		for _, p := range AssignIdentifiers(input, "Project") {
			ids[p.Position] = p.Identifier
		}
		assert.Equal(t, map[int]string{0: "Project 01", 3: "Project 02", 7: "Project 03"}, ids)
	}
}

func TestOrder(t *testing.T) {
	labels := DefaultSchema().Labels
	merit := 7.456
	numbered := []NumberedProject{
		{AggregateProject: AggregateProject{Key: Key{Category: "B", Position: 0}, BonusedMean: 8.904, Contributors: 2, Tally: "1 Yes"}, Identifier: "Project 01"},
		{AggregateProject: AggregateProject{Key: Key{Category: "A", Position: 3}, BonusedMean: 6, MeritMean: &merit, Contributors: 1}, Identifier: "Project 02"},
		{AggregateProject: AggregateProject{Key: Key{Category: "A", Position: 1}, BonusedMean: 5, Contributors: 3}, Identifier: "Project 01"},
	}

	rows := Order(numbered, labels)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"A", "A", "B"}, []string{rows[0].Category, rows[1].Category, rows[2].Category})
	assert.Equal(t, []string{"Project 01", "Project 02", "Project 01"}, []string{rows[0].Identifier, rows[1].Identifier, rows[2].Identifier})
	assert.Equal(t, []int{1, 2, 3}, []int{rows[0].Index, rows[1].Index, rows[2].Index})

	assert.Equal(t, "—", rows[0].Merit)
	assert.Nil(t, rows[0].MeritScore)
	require.NotNil(t, rows[1].MeritScore)
	assert.Equal(t, 7.46, *rows[1].MeritScore)
	assert.Equal(t, "7.46", rows[1].Merit)
	assert.Equal(t, 8.9, rows[2].BonusedScore)
	assert.Equal(t, "1 Yes", rows[2].Tally)

	// the input slice is not reordered
	assert.Equal(t, "B", numbered[0].Category)
}

func TestRoundTiesFollowBinaryValue(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{7.125, 7.12},
		{7.375, 7.38},
		{2.675, 2.67},
		{1.115, 1.11},
		{8.904, 8.9},
		{6, 6},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, round(tt.in, 2), "round(%v, 2)", tt.in)
	}
}
