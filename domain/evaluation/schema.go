// Package evaluation turns an evaluation export into per-project results.
//
// The export has one row per evaluator. After the category anchor column the
// row repeats a variable-width block of columns per project; each block ends
// with a sentinel column. The package partitions the header into blocks,
// extracts one RawEvaluation per (row, block), folds evaluations by
// (category, block position) and numbers the resulting projects.
package evaluation

// FieldRole names a logical field looked up inside a project block.
type FieldRole string

const (
	RoleProjectName    FieldRole = "project_name"
	RoleGenderEquality FieldRole = "gender_equality"
	RoleClarity        FieldRole = "clarity"
	RoleRelevance      FieldRole = "relevance"
	RoleOrganization   FieldRole = "organization"
	RoleResults        FieldRole = "results"
)

// MeritRoles are the four sub-criteria averaged into the merit score, in order.
var MeritRoles = []FieldRole{RoleClarity, RoleRelevance, RoleOrganization, RoleResults}

// Schema is the declarative description of an evaluation export.
type Schema struct {
	// CategoryColumn is the anchor; the first block starts right after it.
	CategoryColumn string `yaml:"category_column" json:"category_column" validate:"required"`

	// EvaluatorColumn holds the evaluator's full name.
	EvaluatorColumn string `yaml:"evaluator_column" json:"evaluator_column" validate:"required"`

	// SentinelPrefix marks the last column of every block.
	SentinelPrefix string `yaml:"sentinel_prefix" json:"sentinel_prefix" validate:"required"`

	// Fields maps each role to a case-insensitive header substring.
	Fields map[FieldRole]string `yaml:"fields" json:"fields" validate:"required,dive,keys,oneof=project_name gender_equality clarity relevance organization results,endkeys,required"`

	Answers Answers `yaml:"answers" json:"answers"`

	// BonusFactor multiplies the overall score when the answer is affirmative.
	BonusFactor float64 `yaml:"bonus_factor" json:"bonus_factor" validate:"gt=0"`

	Labels Labels `yaml:"labels" json:"labels"`
}

// Answers are the normalized gender-equality tokens. Default is used when a
// block has no gender-equality column.
type Answers struct {
	Yes     string `yaml:"yes" json:"yes" validate:"required"`
	No      string `yaml:"no" json:"no" validate:"required"`
	Default string `yaml:"default" json:"default" validate:"required"`
}

// Labels control the text produced in results. Project prefixes synthesized
// names and display identifiers. MeritPlaceholder is reported when no
// contributor has a merit average.
type Labels struct {
	Project          string `yaml:"project" json:"project" validate:"required"`
	Yes              string `yaml:"yes" json:"yes" validate:"required"`
	No               string `yaml:"no" json:"no" validate:"required"`
	MeritPlaceholder string `yaml:"merit_placeholder" json:"merit_placeholder" validate:"required"`
	Precision        int    `yaml:"precision" json:"precision" validate:"gte=0,lte=10"`
}

// DefaultSchema returns the English export layout.
func DefaultSchema() Schema {
	return Schema{
		CategoryColumn:  "Project Category",
		EvaluatorColumn: "Full Name",
		SentinelPrefix:  "Comments:",
		Fields: map[FieldRole]string{
			RoleProjectName:    "project name",
			RoleGenderEquality: "gender equality",
			RoleClarity:        "clarity",
			RoleRelevance:      "relevance",
			RoleOrganization:   "organization",
			RoleResults:        "results",
		},
		Answers: Answers{
			Yes:     "sim",
			No:      "não",
			Default: "não",
		},
		BonusFactor: 1.1,
		Labels: Labels{
			Project:          "Project",
			Yes:              "Yes",
			No:               "No",
			MeritPlaceholder: "—",
			Precision:        2,
		},
	}
}

// PortugueseSchema returns the layout of the Portuguese form export.
func PortugueseSchema() Schema {
	s := DefaultSchema()
	s.CategoryColumn = "Categoria do Projeto"
	s.EvaluatorColumn = "Nome Completo"
	s.SentinelPrefix = "Comentários:"
	s.Fields = map[FieldRole]string{
		RoleProjectName:    "nome do projeto",
		RoleGenderEquality: "igualdade de gênero",
		RoleClarity:        "clareza",
		RoleRelevance:      "relevância",
		RoleOrganization:   "organização",
		RoleResults:        "resultados",
	}
	s.Labels.Project = "Projeto"
	s.Labels.Yes = "Sim"
	s.Labels.No = "Não"
	s.Labels.MeritPlaceholder = "-"
	return s
}

// SchemaPreset resolves a preset name ("en" or "pt").
func SchemaPreset(name string) (Schema, bool) {
	switch name {
	case "", "en":
		return DefaultSchema(), true
	case "pt":
		return PortugueseSchema(), true
	default:
		return Schema{}, false
	}
}

// Clone returns a copy that shares no maps with the receiver.
func (s Schema) Clone() Schema {
	out := s
	out.Fields = make(map[FieldRole]string, len(s.Fields))
	for k, v := range s.Fields {
		out.Fields[k] = v
	}
	return out
}
