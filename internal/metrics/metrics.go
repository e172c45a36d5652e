// Package metrics exposes report run counters to Prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"evalreport/domain/evaluation"
)

// Run outcomes
const (
	OutcomeSuccess = "success"
	OutcomeSchema  = "schema_error"
	OutcomeInput   = "input_error"
	OutcomeFailure = "failure"
)

// PrometheusRecorder implements RunRecorderPort on its own registry so that
// several instances can live in one process (tests, embedded servers).
type PrometheusRecorder struct {
	registry    *prometheus.Registry
	runs        *prometheus.CounterVec
	evaluations *prometheus.CounterVec
	skippedRows prometheus.Counter
	projects    prometheus.Gauge
	duration    prometheus.Histogram
}

// NewPrometheusRecorder registers every report metric on a fresh registry
func NewPrometheusRecorder() *PrometheusRecorder {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &PrometheusRecorder{
		registry: reg,
		runs: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "evalreport_runs_total",
				Help: "Report runs by outcome.",
			},
			[]string{"outcome"},
		),
		evaluations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "evalreport_evaluations_total",
				Help: "Extracted evaluations, split into kept and discarded.",
			},
			[]string{"status"},
		),
		skippedRows: factory.NewCounter(prometheus.CounterOpts{
			Name: "evalreport_skipped_rows_total",
			Help: "Rows ignored because their category cell was empty.",
		}),
		projects: factory.NewGauge(prometheus.GaugeOpts{
			Name: "evalreport_last_run_projects",
			Help: "Projects reported by the most recent successful run.",
		}),
		duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "evalreport_run_duration_seconds",
			Help:    "Time spent scoring one dataset.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// RecordRun implements ports.RunRecorderPort
func (r *PrometheusRecorder) RecordRun(outcome string, stats evaluation.RunStats, elapsed time.Duration) {
	r.runs.WithLabelValues(outcome).Inc()
	r.duration.Observe(elapsed.Seconds())
	if outcome != OutcomeSuccess {
		return
	}
	r.evaluations.WithLabelValues("kept").Add(float64(stats.Evaluated))
	r.evaluations.WithLabelValues("discarded").Add(float64(stats.Discarded))
	r.skippedRows.Add(float64(stats.SkippedRows))
	r.projects.Set(float64(stats.Projects))
}

// Registry returns the underlying registry
func (r *PrometheusRecorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the exposition format
func (r *PrometheusRecorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
