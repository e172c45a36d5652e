package evaluation

import (
	"fmt"
	"sort"
	"strconv"
)

// NumberedProject is an AggregateProject with its display identifier.
type NumberedProject struct {
	AggregateProject
	Identifier string `json:"identifier"`
}

// ResultRow is the exported unit, in presentation order.
type ResultRow struct {
	Index        int      `json:"index"`
	Identifier   string   `json:"project"`
	Category     string   `json:"category"`
	ProjectName  string   `json:"project_name"`
	BonusedScore float64  `json:"bonused_score"`
	MeritScore   *float64 `json:"merit_score,omitempty"`
	Merit        string   `json:"merit"`
	Tally        string   `json:"tie_break"`
	Evaluations  int      `json:"evaluations"`
}

// AssignIdentifiers numbers projects per category in block order:
// "<label> 01", "<label> 02", ... Gaps in block positions do not create gaps
// in numbering. The input is not modified; the output keeps input order.
func AssignIdentifiers(projects []AggregateProject, label string) []NumberedProject {
	byCategory := make(map[string][]int)
	for i, p := range projects {
		byCategory[p.Category] = append(byCategory[p.Category], i)
	}

	out := make([]NumberedProject, len(projects))
	for _, idxs := range byCategory {
		sort.SliceStable(idxs, func(a, b int) bool {
			return projects[idxs[a]].Position < projects[idxs[b]].Position
		})
		for n, i := range idxs {
			out[i] = NumberedProject{
				AggregateProject: projects[i],
				Identifier:       fmt.Sprintf("%s %02d", label, n+1),
			}
		}
	}
	return out
}

// Order sorts numbered projects by (category, identifier) and produces
// 1-based result rows with scores rounded to labels.Precision.
func Order(numbered []NumberedProject, labels Labels) []ResultRow {
	sorted := make([]NumberedProject, len(numbered))
	copy(sorted, numbered)
	sort.SliceStable(sorted, func(a, b int) bool {
		if sorted[a].Category != sorted[b].Category {
			return sorted[a].Category < sorted[b].Category
		}
		return sorted[a].Identifier < sorted[b].Identifier
	})

	rows := make([]ResultRow, len(sorted))
	for i, p := range sorted {
		row := ResultRow{
			Index:        i + 1,
			Identifier:   p.Identifier,
			Category:     p.Category,
			ProjectName:  p.Name,
			BonusedScore: round(p.BonusedMean, labels.Precision),
			Merit:        labels.MeritPlaceholder,
			Tally:        p.Tally,
			Evaluations:  p.Contributors,
		}
		if p.MeritMean != nil {
			m := round(*p.MeritMean, labels.Precision)
			row.MeritScore = &m
			row.Merit = strconv.FormatFloat(m, 'f', -1, 64)
		}
		rows[i] = row
	}
	return rows
}

// round rounds the exact binary value of v, ties to even, so 7.125 gives
// 7.12 and 2.675 (stored just below) gives 2.67.
func round(v float64, places int) float64 {
	r, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', places, 64), 64)
	if err != nil {
		return v
	}
	return r
}
