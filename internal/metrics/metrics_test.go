package metrics

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"evalreport/domain/evaluation"
)

func scrape(t *testing.T, r *PrometheusRecorder) string {
	t.Helper()
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	return string(body)
}

func TestRecordRun(t *testing.T) {
	r := NewPrometheusRecorder()

	r.RecordRun(OutcomeSuccess, evaluation.RunStats{Evaluated: 5, Discarded: 2, SkippedRows: 1, Projects: 3}, 20*time.Millisecond)
	r.RecordRun(OutcomeSchema, evaluation.RunStats{Evaluated: 100}, time.Millisecond)

	out := scrape(t, r)
	assert.Contains(t, out, `evalreport_runs_total{outcome="success"} 1`)
	assert.Contains(t, out, `evalreport_runs_total{outcome="schema_error"} 1`)
	assert.Contains(t, out, `evalreport_evaluations_total{status="kept"} 5`, "failed runs add nothing")
	assert.Contains(t, out, `evalreport_evaluations_total{status="discarded"} 2`)
	assert.Contains(t, out, "evalreport_skipped_rows_total 1")
	assert.Contains(t, out, "evalreport_last_run_projects 3")
	assert.Contains(t, out, "evalreport_run_duration_seconds_count 2")
}

func TestRecordersAreIndependent(t *testing.T) {
	a, b := NewPrometheusRecorder(), NewPrometheusRecorder()
	a.RecordRun(OutcomeFailure, evaluation.RunStats{}, 0)

	assert.Contains(t, scrape(t, a), `evalreport_runs_total{outcome="failure"} 1`)
	assert.NotContains(t, scrape(t, b), "evalreport_runs_total")
	assert.NotNil(t, b.Registry())
}
