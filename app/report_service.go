package app

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"evalreport/domain/core"
	"evalreport/domain/dataset"
	"evalreport/domain/evaluation"
	"evalreport/domain/report"
	"evalreport/internal/errors"
	"evalreport/internal/metrics"
	"evalreport/ports"
)

// ReportService turns an evaluation export into a report: read, score,
// build rosters, assemble.
type ReportService struct {
	readerPort   ports.DatasetReaderPort
	exporterPort ports.ExporterPort
	recorderPort ports.RunRecorderPort
	engine       *evaluation.Engine
	logger       *zap.Logger
}

// NewReportService creates a report service. A nil recorder records nothing.
func NewReportService(readerPort ports.DatasetReaderPort, exporterPort ports.ExporterPort, recorderPort ports.RunRecorderPort, engine *evaluation.Engine, logger *zap.Logger) *ReportService {
	if recorderPort == nil {
		recorderPort = ports.NoopRunRecorder{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		readerPort:   readerPort,
		exporterPort: exporterPort,
		recorderPort: recorderPort,
		engine:       engine,
		logger:       logger,
	}
}

// Schema returns the schema reports are scored with
func (s *ReportService) Schema() evaluation.Schema {
	return s.engine.Schema()
}

// Load reads an uploaded export
func (s *ReportService) Load(ctx context.Context, name string, r io.Reader) (*dataset.Dataset, error) {
	ds, err := s.readerPort.ReadDataset(ctx, name, r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", name)
	}
	return ds, nil
}

// Run loads and scores an export in one call
func (s *ReportService) Run(ctx context.Context, name string, r io.Reader) (*report.Report, error) {
	ds, err := s.Load(ctx, name, r)
	if err != nil {
		s.recorderPort.RecordRun(metrics.OutcomeInput, evaluation.RunStats{}, 0)
		return nil, err
	}
	return s.Generate(ctx, ds)
}

// Generate scores a dataset and assembles the report
func (s *ReportService) Generate(ctx context.Context, ds *dataset.Dataset) (*report.Report, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	runID := core.NewRunID()
	logger := s.logger.With(zap.String("run_id", runID.String()), zap.String("source", ds.Name))
	started := time.Now()

	outcome, err := s.engine.Score(ds)
	if err != nil {
		s.fail(logger, err, started)
		return nil, errors.Wrap(err, "failed to score evaluations")
	}

	logUnmatchedFields(logger, outcome.Layouts, s.engine.Schema())

	rosters, err := evaluation.BuildRosters(ds, s.engine.Schema())
	if err != nil {
		s.fail(logger, err, started)
		return nil, errors.Wrap(err, "failed to build evaluator rosters")
	}

	rep := &report.Report{
		RunID:       runID,
		Source:      ds.Name,
		Rows:        outcome.Rows,
		Sections:    report.Assemble(outcome.Rows, rosters),
		Rosters:     rosters,
		Stats:       outcome.Stats,
		Fingerprint: report.Fingerprint(outcome.Rows),
		Labels:      s.engine.Schema().Labels,
	}

	elapsed := time.Since(started)
	s.recorderPort.RecordRun(metrics.OutcomeSuccess, outcome.Stats, elapsed)

	if outcome.Stats.SkippedRows > 0 {
		logger.Warn("rows without a category were skipped", zap.Int("skipped_rows", outcome.Stats.SkippedRows))
	}
	logger.Info("report generated",
		zap.Int("rows", outcome.Stats.Rows),
		zap.Int("ranges", outcome.Stats.Ranges),
		zap.Int("evaluated", outcome.Stats.Evaluated),
		zap.Int("discarded", outcome.Stats.Discarded),
		zap.Int("projects", outcome.Stats.Projects),
		zap.String("fingerprint", rep.Fingerprint.Short()),
		zap.Duration("elapsed", elapsed),
	)
	return rep, nil
}

// Export writes the report rows through the exporter, index starting at 1
func (s *ReportService) Export(ctx context.Context, w io.Writer, rep *report.Report) error {
	if err := s.exporterPort.Export(ctx, w, rep.Rows, 1); err != nil {
		return errors.ExportFailed(err)
	}
	return nil
}

// logUnmatchedFields reports, once per block, the roles no header matched.
// Those fields fall back to their defaults for every row.
func logUnmatchedFields(logger *zap.Logger, layouts []evaluation.BlockLayout, schema evaluation.Schema) {
	for _, layout := range layouts {
		missing := layout.Missing(schema)
		if len(missing) == 0 {
			continue
		}
		roles := make([]string, len(missing))
		for i, role := range missing {
			roles[i] = string(role)
		}
		logger.Debug("block fields without a matching column",
			zap.Int("position", layout.Range.Position),
			zap.Strings("roles", roles),
		)
	}
}

func (s *ReportService) fail(logger *zap.Logger, err error, started time.Time) {
	outcome := metrics.OutcomeFailure
	if core.IsSchemaError(err) {
		outcome = metrics.OutcomeSchema
	}
	s.recorderPort.RecordRun(outcome, evaluation.RunStats{}, time.Since(started))
	logger.Error("report failed", zap.String("outcome", outcome), zap.Error(err))
}
