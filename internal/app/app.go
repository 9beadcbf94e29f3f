package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Mansi358721/netflix-titles/internal/charts"
	"github.com/Mansi358721/netflix-titles/internal/config"
	"github.com/Mansi358721/netflix-titles/internal/infrastructure"
	"github.com/Mansi358721/netflix-titles/internal/operations"
	"github.com/Mansi358721/netflix-titles/internal/report"
	"github.com/Mansi358721/netflix-titles/internal/validation"
	"github.com/Mansi358721/netflix-titles/pkg/contracts"
)

// shutdownTimeout bounds the telemetry flush at the end of a run
const shutdownTimeout = 5 * time.Second

// Application wires the analyzer: logging, tracing, metrics and the
// pipeline manager with its steps
type Application struct {
	Config  *config.Config
	Paths   *config.Paths
	Logger  *slog.Logger
	Tracing *infrastructure.Tracing
	Metrics *operations.Metrics
	Manager *operations.Manager
	Printer *report.Printer
}

// NewApplication creates the application for cfg. Console summaries go to
// stdout; nil discards them.
func NewApplication(cfg *config.Config, stdout io.Writer) (*Application, error) {
	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	logger = infrastructure.WithComponent(logger, "analyzer")

	logger.Info("Application starting",
		slog.String("name", config.AppName),
		slog.String("version", contracts.Version),
		slog.String("input", cfg.Input.Path),
		slog.String("output_dir", cfg.Output.Dir),
		slog.String("format", cfg.Charts.Format))

	tracing, err := infrastructure.InitializeTracing(cfg.Telemetry, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize tracing: %w", err)
	}

	a := &Application{
		Config:  cfg,
		Paths:   cfg.Paths(),
		Logger:  logger,
		Tracing: tracing,
		Metrics: operations.NewMetrics(),
		Printer: report.NewPrinter(stdout),
	}
	a.Manager = operations.NewManager(nil, a.Metrics, tracing.Tracer, logger)

	if err := operations.RegisterPipeline(a.Manager, &operations.StageOptions{
		Config:   cfg,
		Paths:    a.Paths,
		Printer:  a.Printer,
		Renderer: charts.NewRenderer(logger),
		Metrics:  a.Metrics,
		Logger:   logger,
	}); err != nil {
		return nil, fmt.Errorf("failed to register pipeline: %w", err)
	}

	return a, nil
}

// Run executes the pipeline once, then flushes spans and writes the metrics
// file. An interrupt cancels the run before its next step.
func (a *Application) Run(ctx context.Context) (*operations.OperationState, error) {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx = infrastructure.EnsureRunID(ctx)
	state := operations.NewOperationState(infrastructure.GetRunID(ctx))

	if err := validation.NewFileValidator(a.Logger).ValidateOutputDirectory(a.Paths.OutputDir); err != nil {
		return state, err
	}

	runErr := a.Manager.Run(ctx, state)
	a.finish(ctx)

	if runErr != nil {
		step, _ := operations.FailedStep(runErr)
		infrastructure.WithError(a.Logger, runErr).ErrorContext(ctx, "Analysis failed",
			slog.String("step", step),
			slog.String("error_type", string(operations.GetErrorType(runErr))),
			slog.Int("failed_steps", len(state.GetFailedStages())),
			slog.Int64("duration_ms", state.Duration().Milliseconds()))
		return state, runErr
	}

	a.Logger.InfoContext(ctx, "Analysis complete",
		slog.Int("artifacts", len(state.Artifacts)),
		slog.Int64("duration_ms", state.Duration().Milliseconds()))
	return state, nil
}

// finish flushes telemetry. Failures are logged and never fail the run.
func (a *Application) finish(ctx context.Context) {
	if err := a.Metrics.WriteTextfile(a.Config.Telemetry.MetricsFile); err != nil {
		a.Logger.ErrorContext(ctx, "Failed to write metrics", slog.String("error", err.Error()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := a.Tracing.Shutdown(shutdownCtx); err != nil {
		a.Logger.ErrorContext(ctx, "Error shutting down OpenTelemetry", slog.String("error", err.Error()))
	}
}
