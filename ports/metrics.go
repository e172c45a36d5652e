package ports

import (
	"time"

	"evalreport/domain/evaluation"
)

// RunRecorderPort receives the outcome of every report run
type RunRecorderPort interface {
	RecordRun(outcome string, stats evaluation.RunStats, elapsed time.Duration)
}

// NoopRunRecorder discards everything
type NoopRunRecorder struct{}

func (NoopRunRecorder) RecordRun(string, evaluation.RunStats, time.Duration) {}
