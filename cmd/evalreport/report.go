package main

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"evalreport/domain/report"
	"evalreport/internal/errors"
	"evalreport/ports"
)

func newReportCmd(opts *options) *cobra.Command {
	var out string
	var format string
	var category string

	cmd := &cobra.Command{
		Use:   "report [export-file]",
		Short: "Score an evaluation export (.csv or .xlsx)",
		Long: `Score an evaluation export and print the per-category report.

With --out ending in .xlsx the ordered results are written as a spreadsheet;
any other --out path receives the rendered report.

Example: evalreport report responses.xlsx --out Evaluation_Results.xlsx`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(cmd, opts, args[0], out, format, category)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the result to this file instead of stdout")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, markdown, html or json")
	cmd.Flags().StringVarP(&category, "category", "c", "", "only report this category")

	return cmd
}

func runReport(cmd *cobra.Command, opts *options, path, out, format, category string) error {
	presenter, ok := opts.presenter(format)
	if !ok && format != "json" {
		return errors.InvalidInput(fmt.Sprintf("unknown format %q", format))
	}

	ds, err := opts.reader().ReadFile(cmd.Context(), path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return errors.WithCode(errors.CodeInvalidInput, err)
		}
		return errors.Wrapf(err, "failed to read %s", path)
	}

	svc := opts.service(nil)
	rep, err := svc.Generate(cmd.Context(), ds)
	if err != nil {
		return err
	}
	if category != "" {
		if rep, err = onlyCategory(rep, category); err != nil {
			return err
		}
	}

	w := cmd.OutOrStdout()
	if out != "" {
		f, err := os.Create(out)
		if err != nil {
			return errors.ExportFailed(err)
		}
		defer f.Close()
		w = f

		if strings.EqualFold(filepath.Ext(out), ".xlsx") {
			if err := svc.Export(cmd.Context(), f, rep); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "wrote %d rows to %s\n", len(rep.Rows), out)
			return f.Close()
		}
	}

	if err := present(w, presenter, format, rep); err != nil {
		return errors.ExportFailed(err)
	}
	return nil
}

// onlyCategory narrows rep to one section. Indexes keep their place in the
// full ordering.
func onlyCategory(rep *report.Report, category string) (*report.Report, error) {
	section, ok := rep.Section(category)
	if !ok {
		return nil, errors.InvalidInput(fmt.Sprintf("unknown category %q (have: %s)",
			category, strings.Join(rep.Categories(), ", ")))
	}
	narrowed := *rep
	narrowed.Sections = []report.Section{section}
	narrowed.Rows = section.Rows
	return &narrowed, nil
}

func present(w io.Writer, presenter ports.PresenterPort, format string, rep *report.Report) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}
	return presenter.Present(w, rep)
}
