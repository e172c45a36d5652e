// Package render turns an assembled report into something a person reads.
package render

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"evalreport/domain/report"
)

// MarkdownPresenter writes one section per category: heading, evaluator
// roster, then the category's rows without the category column.
type MarkdownPresenter struct {
	Title   string
	Headers report.ColumnHeaders
}

// NewMarkdownPresenter creates a Markdown presenter
func NewMarkdownPresenter(title string, headers report.ColumnHeaders) *MarkdownPresenter {
	return &MarkdownPresenter{Title: title, Headers: headers}
}

// ContentType of the rendered document
func (p *MarkdownPresenter) ContentType() string { return "text/markdown; charset=utf-8" }

// Present writes the Markdown document to w
func (p *MarkdownPresenter) Present(w io.Writer, r *report.Report) error {
	_, err := w.Write(p.Render(r))
	return err
}

// Render returns the Markdown document
func (p *MarkdownPresenter) Render(r *report.Report) []byte {
	var b bytes.Buffer
	if p.Title != "" {
		fmt.Fprintf(&b, "# %s\n\n", p.Title)
	}

	for _, section := range r.Sections {
		fmt.Fprintf(&b, "## %s\n\n", escapeInline(section.Category))

		if len(section.Evaluators) > 0 {
			roster := section.Roster()
			fence := codeFence(roster)
			fmt.Fprintf(&b, "*%s:*\n\n%s\n%s\n%s\n\n", escapeInline(p.Headers.Evaluators), fence, roster, fence)
		}
		if len(section.Rows) == 0 {
			continue
		}

		h := p.Headers
		writeTableRow(&b, h.Index, h.Project, h.BonusedScore, h.Merit, h.Tally, h.Evaluations)
		b.WriteString("|---:|---|---:|---:|---|---:|\n")
		for _, row := range section.Rows {
			writeTableRow(&b,
				strconv.Itoa(row.Index),
				row.Identifier,
				formatScore(row.BonusedScore),
				row.Merit,
				row.Tally,
				strconv.Itoa(row.Evaluations),
			)
		}
		b.WriteString("\n")
	}
	return b.Bytes()
}

func writeTableRow(b *bytes.Buffer, cells ...string) {
	b.WriteString("|")
	for _, c := range cells {
		b.WriteString(" ")
		b.WriteString(escapeCell(c))
		b.WriteString(" |")
	}
	b.WriteString("\n")
}

var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	"*", `\*`,
	"_", `\_`,
	"#", `\#`,
	"[", `\[`,
	"]", `\]`,
	"(", `\(`,
	")", `\)`,
	"<", `\<`,
	">", `\>`,
	"|", `\|`,
	"\r", " ",
	"\n", " ",
)

// escapeInline makes s literal text in a heading or table cell.
func escapeInline(s string) string {
	return inlineEscaper.Replace(s)
}

func escapeCell(s string) string {
	return escapeInline(s)
}

// codeFence returns a backtick fence longer than any backtick run in s.
func codeFence(s string) string {
	fence := "```"
	for strings.Contains(s, fence) {
		fence += "`"
	}
	return fence
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
