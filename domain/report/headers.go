package report

// ColumnHeaders are the column titles used by exports and presenters
type ColumnHeaders struct {
	Index        string `yaml:"index" json:"index"`
	Project      string `yaml:"project" json:"project"`
	Category     string `yaml:"category" json:"category"`
	ProjectName  string `yaml:"project_name" json:"project_name"`
	BonusedScore string `yaml:"bonused_score" json:"bonused_score"`
	Merit        string `yaml:"merit" json:"merit"`
	Tally        string `yaml:"tally" json:"tally"`
	Evaluations  string `yaml:"evaluations" json:"evaluations"`
	Evaluators   string `yaml:"evaluators" json:"evaluators"`
}

// DefaultColumnHeaders returns the English headers
func DefaultColumnHeaders() ColumnHeaders {
	return ColumnHeaders{
		Index:        "",
		Project:      "Project",
		Category:     "Category",
		ProjectName:  "Project Name",
		BonusedScore: "Bonused Score",
		Merit:        "Merit Average",
		Tally:        "Tie-break (Yes/No)",
		Evaluations:  "Evaluations",
		Evaluators:   "Evaluators",
	}
}

// PortugueseColumnHeaders returns the headers of the Portuguese form export
func PortugueseColumnHeaders() ColumnHeaders {
	return ColumnHeaders{
		Index:        "",
		Project:      "Projeto",
		Category:     "Categoria",
		ProjectName:  "Projeto Original",
		BonusedScore: "Nota com bônus",
		Merit:        "Média Mérito do Trabalho",
		Tally:        "Desempate (Sim/Não)",
		Evaluations:  "Número de Avaliações",
		Evaluators:   "Avaliadores",
	}
}
