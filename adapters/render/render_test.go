package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evalreport/domain/evaluation"
	"evalreport/domain/report"
)

func sampleReport() *report.Report {
	rows := []evaluation.ResultRow{
		{Index: 1, Identifier: "Project 01", Category: "Energy", ProjectName: "Solar", BonusedScore: 8.9, Merit: "—", Tally: "1 Yes / 1 No", Evaluations: 2},
		{Index: 2, Identifier: "Project 02", Category: "Energy", ProjectName: "Wind", BonusedScore: 7, Merit: "6.5", Tally: "a|b", Evaluations: 1},
	}
	rosters := []evaluation.Roster{
		{Category: "Energy", Evaluators: []string{"Ana", "Bia"}},
		{Category: "Water", Evaluators: []string{"Caio"}},
	}
	return &report.Report{Rows: rows, Sections: report.Assemble(rows, rosters)}
}

func TestMarkdownPresenter(t *testing.T) {
	p := NewMarkdownPresenter("Evaluation Results", report.DefaultColumnHeaders())

	var buf bytes.Buffer
	require.NoError(t, p.Present(&buf, sampleReport()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Evaluation Results\n\n## Energy\n\n*Evaluators:*\n\n```\nAna\nBia\n```\n"))
	assert.Contains(t, out, "|  | Project | Bonused Score | Merit Average | Tie-break \\(Yes/No\\) | Evaluations |\n")
	assert.Contains(t, out, "| 1 | Project 01 | 8.9 | — | 1 Yes / 1 No | 2 |\n")
	assert.Contains(t, out, `| a\|b |`)
	assert.Contains(t, out, "## Water\n\n*Evaluators:*\n\n```\nCaio\n```\n")
	assert.NotContains(t, out, "| Energy |", "category column is dropped")
}

func TestHTMLPresenter(t *testing.T) {
	p := NewHTMLPresenter(NewMarkdownPresenter("", report.DefaultColumnHeaders()))

	out := string(p.Render(sampleReport()))

	assert.Contains(t, out, "<h2")
	assert.Contains(t, out, "Energy</h2>")
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<td>Project 01</td>")
	assert.Contains(t, out, "Ana\nBia")
	assert.Equal(t, "text/html; charset=utf-8", p.ContentType())
}

func TestHTMLPresenterRendersCategoryVerbatim(t *testing.T) {
	category := `[click](javascript:alert(1)) "Energy" -- A <b>x</b>`
	rows := []evaluation.ResultRow{
		{Index: 1, Identifier: "Project 01", Category: category, BonusedScore: 8.9, Merit: "[m](javascript:x)", Tally: "1 Yes", Evaluations: 1},
	}
	rosters := []evaluation.Roster{{Category: category, Evaluators: []string{"Ana ``` `x`"}}}
	rep := &report.Report{Rows: rows, Sections: report.Assemble(rows, rosters)}

	out := string(NewHTMLPresenter(NewMarkdownPresenter("", report.DefaultColumnHeaders())).Render(rep))

	assert.NotContains(t, out, "<a ")
	assert.NotContains(t, out, "href")
	assert.NotContains(t, out, "<b>")
	assert.NotContains(t, out, "&ldquo;")
	assert.NotContains(t, out, "&ndash;")
	assert.Contains(t, out, "[click](javascript:alert(1))")
	assert.Contains(t, out, "Energy&quot; -- A")
	assert.Contains(t, out, "[m](javascript:x)")
	assert.Contains(t, out, "Ana ``` `x`")
}

func TestCodeFence(t *testing.T) {
	assert.Equal(t, "```", codeFence("Ana\nBia"))
	assert.Equal(t, "````", codeFence("a ``` b"))
}

func TestTextPresenter(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTextPresenter(report.DefaultColumnHeaders()).Present(&buf, sampleReport()))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Energy\n======\nEvaluators:\n  Ana\n  Bia\n"))
	assert.Contains(t, out, "Project 01")
	assert.Contains(t, out, "1 Yes / 1 No")
	assert.Contains(t, out, "Water\n=====\nEvaluators:\n  Caio\n")
}
