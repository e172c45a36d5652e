package evaluation

// BlockLayout is a column range with its logical fields resolved to column
// indices. Layouts depend only on the header, so they are resolved once per
// dataset and shared by every row.
type BlockLayout struct {
	Range  ColumnRange
	fields map[FieldRole]int
}

// ResolveLayouts applies the schema's matchers to every range. For each role
// the first matching column inside the range wins.
func ResolveLayouts(columns []string, ranges []ColumnRange, schema Schema) []BlockLayout {
	matchers := schema.Matchers()
	layouts := make([]BlockLayout, len(ranges))
	for i, r := range ranges {
		fields := make(map[FieldRole]int, len(matchers))
		for _, m := range matchers {
			for col := r.Start; col <= r.End && col < len(columns); col++ {
				if m.Matches(columns[col]) {
					fields[m.Role] = col
					break
				}
			}
		}
		layouts[i] = BlockLayout{Range: r, fields: fields}
	}
	return layouts
}

// Column returns the column index bound to role, if any
func (l BlockLayout) Column(role FieldRole) (int, bool) {
	idx, ok := l.fields[role]
	return idx, ok
}

// Missing lists the roles with no matching column, in matcher order
func (l BlockLayout) Missing(schema Schema) []FieldRole {
	var missing []FieldRole
	for _, m := range schema.Matchers() {
		if _, ok := l.fields[m.Role]; !ok {
			missing = append(missing, m.Role)
		}
	}
	return missing
}
