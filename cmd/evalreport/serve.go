package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"evalreport/adapters/render"
	"evalreport/internal/metrics"
	"evalreport/ui"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd(opts *options) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the upload form and report endpoints",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("port") {
				opts.cfg.Server.Port = port
			}
			return runServe(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "listen port (default $PORT or 8080)")

	return cmd
}

func runServe(parent context.Context, opts *options) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	recorder := metrics.NewPrometheusRecorder()
	app, err := ui.NewApp(ui.Config{
		Port:           opts.cfg.Server.Port,
		Title:          opts.title(),
		MaxUploadBytes: opts.cfg.Server.MaxUploadBytes(),
		ExportFileName: opts.cfg.Export.FileName,
	}, opts.service(recorder), render.NewHTMLPresenter(render.NewMarkdownPresenter("", opts.headers())), recorder.Handler(), opts.logger)
	if err != nil {
		return err
	}
	srv := app.Server()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		opts.logger.Info("listening", zap.String("addr", srv.Addr), zap.String("env", opts.cfg.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		opts.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
