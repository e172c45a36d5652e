package render

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"evalreport/domain/report"
)

// TextPresenter prints aligned plain-text tables for terminals.
type TextPresenter struct {
	Headers report.ColumnHeaders
}

// NewTextPresenter creates a plain-text presenter
func NewTextPresenter(headers report.ColumnHeaders) *TextPresenter {
	return &TextPresenter{Headers: headers}
}

// ContentType of the rendered text
func (p *TextPresenter) ContentType() string { return "text/plain; charset=utf-8" }

// Present writes every section to w
func (p *TextPresenter) Present(w io.Writer, r *report.Report) error {
	for i, section := range r.Sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "%s\n%s\n", section.Category, strings.Repeat("=", len([]rune(section.Category)))); err != nil {
			return err
		}
		if len(section.Evaluators) > 0 {
			if _, err := fmt.Fprintf(w, "%s:\n  %s\n", p.Headers.Evaluators, strings.Join(section.Evaluators, "\n  ")); err != nil {
				return err
			}
		}
		if len(section.Rows) == 0 {
			continue
		}

		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		h := p.Headers
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", h.Index, h.Project, h.BonusedScore, h.Merit, h.Tally, h.Evaluations)
		for _, row := range section.Rows {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\n",
				row.Index, row.Identifier, formatScore(row.BonusedScore), row.Merit, row.Tally, row.Evaluations)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
	}
	return nil
}
