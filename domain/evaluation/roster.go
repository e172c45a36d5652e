package evaluation

import (
	"sort"
	"strings"

	"evalreport/domain/dataset"
)

// RosterEntry is one distinct (category, evaluator) pair.
type RosterEntry struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// Roster lists the distinct evaluators of one category, sorted.
type Roster struct {
	Category   string   `json:"category"`
	Evaluators []string `json:"evaluators"`
}

// String joins the evaluator names with newlines
func (r Roster) String() string {
	return strings.Join(r.Evaluators, "\n")
}

// RosterEntries projects the distinct (category, name) pairs in first-seen
// order. Rows with an empty category or name are skipped.
func RosterEntries(ds *dataset.Dataset, schema Schema) ([]RosterEntry, error) {
	nameIdx, err := ds.ColumnIndex(schema.EvaluatorColumn)
	if err != nil {
		return nil, err
	}
	catIdx, err := ds.ColumnIndex(schema.CategoryColumn)
	if err != nil {
		return nil, err
	}

	seen := make(map[RosterEntry]bool)
	var entries []RosterEntry
	for _, row := range ds.Rows {
		entry := RosterEntry{Category: row[catIdx].Raw, Name: row[nameIdx].Raw}
		if entry.Category == "" || entry.Name == "" || seen[entry] {
			continue
		}
		seen[entry] = true
		entries = append(entries, entry)
	}
	return entries, nil
}

// BuildRosters groups roster entries by category. Categories and names are
// sorted, so the result does not depend on row order.
func BuildRosters(ds *dataset.Dataset, schema Schema) ([]Roster, error) {
	entries, err := RosterEntries(ds, schema)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]string)
	for _, e := range entries {
		grouped[e.Category] = append(grouped[e.Category], e.Name)
	}

	rosters := make([]Roster, 0, len(grouped))
	for category, names := range grouped {
		sort.Strings(names)
		rosters = append(rosters, Roster{Category: category, Evaluators: names})
	}
	sort.Slice(rosters, func(i, j int) bool {
		return rosters[i].Category < rosters[j].Category
	})
	return rosters, nil
}
