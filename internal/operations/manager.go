package operations

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/Mansi358721/netflix-titles/internal/infrastructure"
)

// Manager runs the registered steps one after another. The first failing
// step ends the run and the remaining steps are marked skipped.
type Manager struct {
	registry *Registry
	metrics  *Metrics
	tracer   trace.Tracer
	logger   *slog.Logger
}

// NewManager creates a pipeline manager. Nil metrics disable metric
// collection and a nil tracer disables spans.
func NewManager(registry *Registry, metrics *Metrics, tracer trace.Tracer, logger *slog.Logger) *Manager {
	if registry == nil {
		registry = NewRegistry()
	}
	if tracer == nil {
		tracer = noop.NewTracerProvider().Tracer("")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		registry: registry,
		metrics:  metrics,
		tracer:   tracer,
		logger:   logger,
	}
}

// RegisterStage appends a step to the pipeline
func (m *Manager) RegisterStage(step Step) error {
	return m.registry.Register(step)
}

// StepIDs returns the registered step IDs in run order
func (m *Manager) StepIDs() []string {
	return m.registry.ListIDs()
}

// Metrics returns the run metrics, which may be nil
func (m *Manager) Metrics() *Metrics {
	return m.metrics
}

// Run executes every registered step in registration order
func (m *Manager) Run(ctx context.Context, state *OperationState) error {
	steps := m.registry.List()
	for _, step := range steps {
		state.SetStage(step.ID(), NewStepState(step.ID(), step.Name()))
	}

	state.Start()
	m.logger.InfoContext(ctx, "Pipeline started",
		slog.String("operation_id", state.ID),
		slog.Int("step_count", len(steps)),
		slog.Any("steps", m.StepIDs()))

	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			m.logger.WarnContext(ctx, "Pipeline cancelled",
				slog.String("operation_id", state.ID),
				slog.String("step", step.ID()))
			m.skipRemaining(state, steps[i:], "run cancelled")
			state.Cancel()
			return NewCancellationError(step.ID(), err)
		}

		if err := m.executeStage(ctx, state, step); err != nil {
			m.skipRemaining(state, steps[i+1:], fmt.Sprintf("previous step %s failed", step.ID()))
			state.Fail(err)
			return err
		}
	}

	state.Complete()
	m.logger.InfoContext(ctx, "Pipeline completed",
		slog.String("operation_id", state.ID),
		slog.Int("artifacts", len(state.Artifacts)),
		slog.Int64("duration_ms", state.Duration().Milliseconds()))
	return nil
}

// executeStage runs a single step exactly once inside its own span
func (m *Manager) executeStage(ctx context.Context, state *OperationState, step Step) error {
	stepState := state.GetStage(step.ID())

	ctx, span := m.tracer.Start(ctx, "step."+step.ID(),
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(
			attribute.String("operation.id", state.ID),
			attribute.String("step.id", step.ID()),
			attribute.String("step.name", step.Name()),
		),
	)
	defer span.End()

	m.logger.InfoContext(ctx, "Step started",
		slog.String("step", step.ID()),
		slog.String("name", step.Name()))

	stepState.Start()
	start := time.Now()
	err := step.Execute(ctx, state)
	duration := time.Since(start)
	m.metrics.ObserveStep(step.ID(), duration)

	if err != nil {
		infrastructure.RecordError(ctx, err)
		stepState.Fail(err)
		m.metrics.IncFailure(step.ID())
		m.logger.ErrorContext(ctx, "Step failed",
			slog.String("step", step.ID()),
			slog.Int64("duration_ms", duration.Milliseconds()),
			slog.String("error", err.Error()))
		return NewExecutionError(step.ID(), err)
	}

	rows := 0
	if state.Catalog != nil {
		rows = state.Catalog.Len()
	}
	stepState.Complete(rows)
	span.SetAttributes(attribute.Int("step.rows", rows))
	span.SetStatus(codes.Ok, "")

	m.logger.InfoContext(ctx, "Step completed",
		slog.String("step", step.ID()),
		slog.Int("rows", rows),
		slog.Int64("duration_ms", duration.Milliseconds()))
	return nil
}

func (m *Manager) skipRemaining(state *OperationState, steps []Step, reason string) {
	for _, step := range steps {
		if s := state.GetStage(step.ID()); s != nil {
			s.Skip(reason)
		}
	}
}
