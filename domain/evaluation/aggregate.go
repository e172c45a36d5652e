package evaluation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/montanaflynn/stats"
)

// Key identifies a project across evaluators.
type Key struct {
	Category string `json:"category"`
	Position int    `json:"position"`
}

// AggregateProject is the fold of every qualifying evaluation of one key.
type AggregateProject struct {
	Key
	Name         string   `json:"name"`
	BonusedMean  float64  `json:"bonused_mean"`
	MeritMean    *float64 `json:"merit_mean"`
	YesVotes     int      `json:"yes_votes"`
	NoVotes      int      `json:"no_votes"`
	Tally        string   `json:"tally"`
	Contributors int      `json:"contributors"`
}

// Accumulator collects evaluations per key in arrival order. Keys exist only
// once an evaluated record has been added for them.
type Accumulator struct {
	schema Schema
	order  []Key
	evals  map[Key][]RawEvaluation
	names  map[Key][]string
}

// NewAccumulator creates an empty accumulator
func NewAccumulator(schema Schema) *Accumulator {
	return &Accumulator{
		schema: schema,
		evals:  make(map[Key][]RawEvaluation),
		names:  make(map[Key][]string),
	}
}

// Add folds eval under (category, eval.Position). Unevaluated records are
// rejected and leave no trace.
func (a *Accumulator) Add(category string, eval RawEvaluation) bool {
	if !eval.Evaluated() {
		return false
	}
	key := Key{Category: category, Position: eval.Position}
	if _, ok := a.evals[key]; !ok {
		a.order = append(a.order, key)
	}
	a.evals[key] = append(a.evals[key], eval)
	a.names[key] = append(a.names[key], eval.ProjectName)
	return true
}

// Reduce produces one AggregateProject per key in first-seen order.
func (a *Accumulator) Reduce() []AggregateProject {
	yes := NormalizeAnswer(a.schema.Answers.Yes)
	no := NormalizeAnswer(a.schema.Answers.No)

	projects := make([]AggregateProject, 0, len(a.order))
	for _, key := range a.order {
		evals := a.evals[key]

		bonused := make(stats.Float64Data, 0, len(evals))
		merits := make(stats.Float64Data, 0, len(evals))
		p := AggregateProject{Key: key, Contributors: len(evals)}
		for _, e := range evals {
			bonused = append(bonused, e.BonusedScore)
			if e.MeritAverage != nil {
				merits = append(merits, *e.MeritAverage)
			}
			switch e.GenderAnswer {
			case yes:
				p.YesVotes++
			case no:
				p.NoVotes++
			}
		}

		// Summing in sorted order keeps the rounded mean independent of row order.
		sort.Float64s(bonused)
		sort.Float64s(merits)
		p.BonusedMean, _ = stats.Mean(bonused)
		if m, err := stats.Mean(merits); err == nil {
			p.MeritMean = &m
		}
		p.Tally = FormatTally(p.YesVotes, p.NoVotes, a.schema.Labels)
		p.Name = resolveName(a.names[key])
		if p.Name == "" {
			p.Name = fmt.Sprintf("%s %d", key.Category, key.Position+1)
		}
		projects = append(projects, p)
	}
	return projects
}

// FormatTally renders the vote counts, e.g. "2 Yes / 1 No". Zero counts are
// omitted; no votes at all gives "".
func FormatTally(yes, no int, labels Labels) string {
	var parts []string
	if yes > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", yes, labels.Yes))
	}
	if no > 0 {
		parts = append(parts, fmt.Sprintf("%d %s", no, labels.No))
	}
	return strings.Join(parts, " / ")
}

// resolveName returns the most frequent non-empty name; ties go to the name
// seen first.
func resolveName(names []string) string {
	counts := make(map[string]int, len(names))
	var order []string
	for _, n := range names {
		if n == "" {
			continue
		}
		if counts[n] == 0 {
			order = append(order, n)
		}
		counts[n]++
	}

	best, bestCount := "", 0
	for _, n := range order {
		if counts[n] > bestCount {
			best, bestCount = n, counts[n]
		}
	}
	return best
}
