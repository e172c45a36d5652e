package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"evalreport/adapters/datareadiness/coercer"
	"evalreport/adapters/excel"
	"evalreport/adapters/render"
	"evalreport/app"
	"evalreport/domain/evaluation"
	"evalreport/domain/report"
	"evalreport/internal"
	"evalreport/internal/config"
	"evalreport/ports"
)

// options carries what every subcommand needs once flags and environment
// have been read.
type options struct {
	schemaFile string
	preset     string

	cfg    *config.Config
	schema evaluation.Schema
	logger *zap.Logger
}

func (o *options) load(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("schema") {
		cfg.Schema.File = o.schemaFile
	}
	if cmd.Flags().Changed("preset") {
		cfg.ApplyPreset(o.preset)
	}

	schema, err := config.LoadSchema(cfg.Schema.File, cfg.Schema.Preset)
	if err != nil {
		return err
	}

	logger, err := internal.NewLogger(cfg.Env, internal.ParseLogLevel(cfg.LogLevel))
	if err != nil {
		return err
	}

	o.cfg = cfg
	o.schema = schema
	o.logger = logger
	return nil
}

func (o *options) headers() report.ColumnHeaders {
	if o.cfg.Schema.Preset == "pt" {
		return report.PortugueseColumnHeaders()
	}
	return report.DefaultColumnHeaders()
}

func (o *options) title() string {
	if o.cfg.Schema.Preset == "pt" {
		return "Resultados da Avaliação"
	}
	return "Evaluation Results"
}

func (o *options) exporter() *excel.Exporter {
	return excel.NewExporter(excel.ExportConfig{
		SheetName:          o.cfg.Export.SheetName,
		IncludeProjectName: o.cfg.Export.IncludeProjectName,
		Headers:            o.headers(),
	})
}

func (o *options) reader() *excel.DataReader {
	return excel.NewDataReader(o.logger)
}

func (o *options) service(recorder ports.RunRecorderPort) *app.ReportService {
	engine := evaluation.NewEngine(o.schema, coercer.NewTypeCoercer(coercer.CoercionConfig{
		DecimalComma: o.cfg.Coercion.DecimalComma,
	}))
	return app.NewReportService(
		o.reader(),
		o.exporter(),
		recorder,
		engine,
		o.logger,
	)
}

func (o *options) presenter(format string) (ports.PresenterPort, bool) {
	md := render.NewMarkdownPresenter(o.title(), o.headers())
	switch format {
	case "text", "":
		return render.NewTextPresenter(o.headers()), true
	case "markdown", "md":
		return md, true
	case "html":
		return render.NewHTMLPresenter(md), true
	default:
		return nil, false
	}
}
