// Package testkit generates synthetic evaluation exports for tests.
package testkit

import (
	"encoding/csv"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// ExportGeneratorConfig configures the export generator
type ExportGeneratorConfig struct {
	Categories            []string `json:"categories"`
	EvaluatorsPerCategory int      `json:"evaluators_per_category"`
	Blocks                int      `json:"blocks"`
	BlankRate             float64  `json:"blank_rate"`
	AffirmativeRate       float64  `json:"affirmative_rate"`
	Seed                  int64    `json:"seed"`
}

// DefaultExportConfig returns a small three-category export
func DefaultExportConfig() ExportGeneratorConfig {
	return ExportGeneratorConfig{
		Categories:            []string{"Education", "Energy", "Health"},
		EvaluatorsPerCategory: 4,
		Blocks:                3,
		BlankRate:             0.2,
		AffirmativeRate:       0.5,
		Seed:                  42,
	}
}

// Export is a generated header and its data rows
type Export struct {
	Columns []string
	Rows    [][]string
}

// ExportGenerator generates English-layout evaluation exports. Each block
// carries name, score, gender answer, the four merit criteria and a comment.
type ExportGenerator struct {
	config ExportGeneratorConfig
	rng    *rand.Rand
}

// NewExportGenerator creates a new export generator
func NewExportGenerator(config ExportGeneratorConfig) *ExportGenerator {
	return &ExportGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate builds the export
func (g *ExportGenerator) Generate() Export {
	columns := []string{"Timestamp", "Full Name", "Project Category"}
	for b := 1; b <= g.config.Blocks; b++ {
		columns = append(columns,
			fmt.Sprintf("Project name (%d)", b),
			fmt.Sprintf("Overall score (%d)", b),
			fmt.Sprintf("Does the project promote gender equality? (%d)", b),
			fmt.Sprintf("Clarity (%d)", b),
			fmt.Sprintf("Relevance (%d)", b),
			fmt.Sprintf("Organization (%d)", b),
			fmt.Sprintf("Results (%d)", b),
			fmt.Sprintf("Comments: project %d", b),
		)
	}

	var rows [][]string
	for _, category := range g.config.Categories {
		for e := 1; e <= g.config.EvaluatorsPerCategory; e++ {
			row := []string{
				fmt.Sprintf("2024-05-%02d 10:00:00", e),
				fmt.Sprintf("%s evaluator %d", category, e),
				category,
			}
			for b := 1; b <= g.config.Blocks; b++ {
				row = append(row, g.block(category, b)...)
			}
			rows = append(rows, row)
		}
	}
	return Export{Columns: columns, Rows: rows}
}

func (g *ExportGenerator) block(category string, b int) []string {
	if g.rng.Float64() < g.config.BlankRate {
		return make([]string, 8)
	}

	answer := "não"
	if g.rng.Float64() < g.config.AffirmativeRate {
		answer = "sim"
	}
	return []string{
		fmt.Sprintf("%s project %d", category, b),
		g.score(),
		answer,
		g.score(),
		g.score(),
		g.score(),
		g.score(),
		"generated",
	}
}

func (g *ExportGenerator) score() string {
	return strconv.Itoa(1 + g.rng.Intn(10))
}

// Shuffled returns a copy of e with rows in a seeded random order
func (e Export) Shuffled(seed int64) Export {
	rows := make([][]string, len(e.Rows))
	copy(rows, e.Rows)
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(rows), func(i, j int) { rows[i], rows[j] = rows[j], rows[i] })
	return Export{Columns: e.Columns, Rows: rows}
}

// CSV encodes the export
func (e Export) CSV() string {
	var b strings.Builder
	w := csv.NewWriter(&b)
	w.Write(e.Columns)
	w.WriteAll(e.Rows)
	return b.String()
}
