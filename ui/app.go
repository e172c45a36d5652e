package ui

import (
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"evalreport/adapters/render"
	"evalreport/app"
)

//go:embed templates/*.html
var embeddedFiles embed.FS

// App represents the UI application
type App struct {
	router    *chi.Mux
	config    Config
	service   *app.ReportService
	presenter *render.HTMLPresenter
	metrics   http.Handler
	templates *template.Template
	logger    *zap.Logger
}

// Config holds UI application configuration
type Config struct {
	Port           string
	Title          string
	MaxUploadBytes int64
	ExportFileName string
}

// NewApp creates a new UI application. metrics may be nil, in which case
// /metrics is not mounted.
func NewApp(config Config, service *app.ReportService, presenter *render.HTMLPresenter, metrics http.Handler, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if config.MaxUploadBytes <= 0 {
		config.MaxUploadBytes = 32 << 20
	}

	funcMap := template.FuncMap{
		"mb": func(n int64) int64 { return n >> 20 },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	a := &App{
		router:    chi.NewRouter(),
		config:    config,
		service:   service,
		presenter: presenter,
		metrics:   metrics,
		templates: templates,
		logger:    logger,
	}

	a.setupMiddleware()
	a.setupRoutes()

	return a, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.RequestID)
	a.router.Use(middleware.RealIP)
	a.router.Use(a.requestLogger)
	a.router.Use(middleware.Recoverer)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)
	a.router.Get("/healthz", a.handleHealth)

	a.router.Post("/report", a.handleReportHTML)
	a.router.Post("/report.xlsx", a.handleReportXLSX)
	a.router.Post("/report.json", a.handleReportJSON)

	if a.metrics != nil {
		a.router.Method(http.MethodGet, "/metrics", a.metrics)
	}
}

// requestLogger logs one line per request through zap
func (a *App) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		a.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

// ServeHTTP implements http.Handler
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.router.ServeHTTP(w, r)
}

// Server returns an http.Server bound to the configured port
func (a *App) Server() *http.Server {
	return &http.Server{
		Addr:              ":" + a.config.Port,
		Handler:           a.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
