package evaluation

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Casers keep per-call state, so each helper builds its own.

// foldHeader prepares a header or needle for case-insensitive substring
// matching. NFC composition makes "não" typed with a combining tilde equal to
// the precomposed form.
func foldHeader(s string) string {
	return cases.Fold().String(norm.NFC.String(s))
}

// NormalizeAnswer trims and lowercases a free-text answer.
func NormalizeAnswer(s string) string {
	return cases.Lower(language.Und).String(norm.NFC.String(strings.TrimSpace(s)))
}

// Matcher selects the header of one logical field inside a block.
type Matcher struct {
	Role   FieldRole
	Needle string
}

// Matches reports whether header contains the needle, ignoring case.
func (m Matcher) Matches(header string) bool {
	if m.Needle == "" {
		return false
	}
	return strings.Contains(foldHeader(header), foldHeader(m.Needle))
}

// Matchers returns the schema's field table in a fixed role order.
func (s Schema) Matchers() []Matcher {
	roles := append([]FieldRole{RoleProjectName, RoleGenderEquality}, MeritRoles...)
	out := make([]Matcher, 0, len(roles))
	for _, role := range roles {
		if needle, ok := s.Fields[role]; ok {
			out = append(out, Matcher{Role: role, Needle: needle})
		}
	}
	return out
}
