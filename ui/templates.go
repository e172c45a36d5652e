package ui

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"
)

// renderTemplate executes a template into a buffer first so that a failing
// template never leaves a half-written page.
func (a *App) renderTemplate(w http.ResponseWriter, status int, name string, data interface{}) {
	var buf bytes.Buffer
	if err := a.templates.ExecuteTemplate(&buf, name, data); err != nil {
		a.logger.Error("template error", zap.String("template", name), zap.Error(err))
		http.Error(w, "Template rendering failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		a.logger.Warn("error writing template response", zap.Error(err))
	}
}
