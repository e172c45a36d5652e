package ui

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"evalreport/domain/report"
	"evalreport/internal/errors"
)

const uploadField = "file"

var errUploadTooLarge = errors.InvalidInput("upload exceeds the size limit")

type indexPage struct {
	Title          string
	MaxUploadBytes int64
	Error          string
}

type reportPage struct {
	Title  string
	Report *report.Report
	Body   template.HTML
}

// handleIndex renders the upload form
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	a.renderTemplate(w, http.StatusOK, "index.html", a.indexPage(""))
}

// handleHealth answers liveness probes
func (a *App) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReportHTML scores the upload and renders the report page
func (a *App) handleReportHTML(w http.ResponseWriter, r *http.Request) {
	rep, err := a.generate(w, r)
	if err != nil {
		a.renderTemplate(w, a.status(err), "index.html", a.indexPage(err.Error()))
		return
	}

	a.renderTemplate(w, http.StatusOK, "report.html", reportPage{
		Title:  a.config.Title,
		Report: rep,
		// Report text is escaped before Markdown rendering; raw HTML is dropped.
		Body: template.HTML(a.presenter.Render(rep)),
	})
}

// handleReportXLSX scores the upload and streams the workbook
func (a *App) handleReportXLSX(w http.ResponseWriter, r *http.Request) {
	rep, err := a.generate(w, r)
	if err != nil {
		a.writeError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := a.service.Export(r.Context(), &buf, rep); err != nil {
		a.writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", a.config.ExportFileName))
	w.Header().Set("X-Report-Fingerprint", rep.Fingerprint.String())
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		a.logger.Warn("failed to write workbook", zap.Error(err))
	}
}

// handleReportJSON scores the upload and returns the report as JSON
func (a *App) handleReportJSON(w http.ResponseWriter, r *http.Request) {
	rep, err := a.generate(w, r)
	if err != nil {
		a.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// generate reads the uploaded file and runs the report
func (a *App) generate(w http.ResponseWriter, r *http.Request) (*report.Report, error) {
	r.Body = http.MaxBytesReader(w, r.Body, a.config.MaxUploadBytes)
	if err := r.ParseMultipartForm(a.config.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if stderrors.As(err, &tooLarge) {
			return nil, errUploadTooLarge
		}
		return nil, errors.InvalidInput("expected a multipart upload")
	}

	file, header, err := r.FormFile(uploadField)
	if err != nil {
		return nil, errors.InvalidInput("no file uploaded")
	}
	defer file.Close()

	return a.service.Run(r.Context(), header.Filename, file)
}

func (a *App) status(err error) int {
	if stderrors.Is(err, errUploadTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return errors.HTTPStatus(err)
}

func (a *App) writeError(w http.ResponseWriter, err error) {
	status := a.status(err)
	if status >= http.StatusInternalServerError {
		a.logger.Error("request failed", zap.Error(err))
	}
	writeJSON(w, status, map[string]string{
		"error": err.Error(),
		"code":  errors.GetCode(err),
	})
}

func (a *App) indexPage(message string) indexPage {
	return indexPage{
		Title:          a.config.Title,
		MaxUploadBytes: a.config.MaxUploadBytes,
		Error:          message,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
