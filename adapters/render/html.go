package render

import (
	"io"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"evalreport/domain/report"
)

// HTMLPresenter renders the Markdown report to an HTML fragment.
type HTMLPresenter struct {
	markdown *MarkdownPresenter
}

// NewHTMLPresenter wraps a Markdown presenter
func NewHTMLPresenter(md *MarkdownPresenter) *HTMLPresenter {
	return &HTMLPresenter{markdown: md}
}

// ContentType of the rendered fragment
func (p *HTMLPresenter) ContentType() string { return "text/html; charset=utf-8" }

// Present writes the HTML fragment to w
func (p *HTMLPresenter) Present(w io.Writer, r *report.Report) error {
	_, err := w.Write(p.Render(r))
	return err
}

// Render converts the report to HTML. Parsers keep state, so each call
// builds its own. Text is rendered verbatim: raw HTML is dropped, only safe
// link schemes survive and typographic substitution is off.
func (p *HTMLPresenter) Render(r *report.Report) []byte {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs
	mdParser := parser.NewWithExtensions(extensions)

	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.SkipHTML | html.Safelink,
	})
	return markdown.ToHTML(p.markdown.Render(r), mdParser, renderer)
}
