package report

import (
	"strconv"
	"strings"

	"evalreport/domain/core"
	"evalreport/domain/evaluation"
)

// Section is what gets displayed for one category: its evaluator roster and
// its result rows without the category column.
type Section struct {
	Category   string                 `json:"category"`
	Evaluators []string               `json:"evaluators"`
	Rows       []evaluation.ResultRow `json:"rows"`
}

// Roster returns the newline-joined evaluator list
func (s Section) Roster() string {
	return strings.Join(s.Evaluators, "\n")
}

// Report is the assembled output of one run.
type Report struct {
	RunID       core.RunID             `json:"run_id"`
	Source      string                 `json:"source"`
	Rows        []evaluation.ResultRow `json:"rows"`
	Sections    []Section              `json:"sections"`
	Rosters     []evaluation.Roster    `json:"rosters"`
	Stats       evaluation.RunStats    `json:"stats"`
	Fingerprint core.Hash              `json:"fingerprint"`
	Labels      evaluation.Labels      `json:"-"`
}

// Assemble joins ordered rows and rosters by category. Sections follow the
// category order of rows; categories that only have a roster come last in
// roster order, with no rows.
func Assemble(rows []evaluation.ResultRow, rosters []evaluation.Roster) []Section {
	byCategory := make(map[string][]string, len(rosters))
	for _, r := range rosters {
		byCategory[r.Category] = r.Evaluators
	}

	var sections []Section
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Category]
		if !ok {
			i = len(sections)
			index[row.Category] = i
			sections = append(sections, Section{
				Category:   row.Category,
				Evaluators: byCategory[row.Category],
			})
		}
		sections[i].Rows = append(sections[i].Rows, row)
	}

	for _, r := range rosters {
		if _, ok := index[r.Category]; ok {
			continue
		}
		index[r.Category] = len(sections)
		sections = append(sections, Section{Category: r.Category, Evaluators: r.Evaluators})
	}
	return sections
}

// Fingerprint hashes the canonical encoding of rows. Equal inputs give equal
// fingerprints, which makes repeated runs easy to compare.
func Fingerprint(rows []evaluation.ResultRow) core.Hash {
	records := make([][]string, len(rows))
	for i, r := range rows {
		records[i] = []string{
			strconv.Itoa(r.Index),
			r.Identifier,
			r.Category,
			r.ProjectName,
			strconv.FormatFloat(r.BonusedScore, 'g', -1, 64),
			r.Merit,
			r.Tally,
			strconv.Itoa(r.Evaluations),
		}
	}
	return core.NewRecordHash(records)
}

// Categories returns the section categories in display order
func (r *Report) Categories() []string {
	out := make([]string, len(r.Sections))
	for i, s := range r.Sections {
		out[i] = s.Category
	}
	return out
}

// Section looks up the section of one category
func (r *Report) Section(category string) (Section, bool) {
	for _, s := range r.Sections {
		if s.Category == category {
			return s, true
		}
	}
	return Section{}, false
}
