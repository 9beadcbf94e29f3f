package operations

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Artifact kinds counted by Metrics
const (
	ArtifactChart = "chart"
	ArtifactTable = "table"
)

// Metrics bundles Prometheus collectors for one pipeline run
type Metrics struct {
	Registry         *prometheus.Registry
	RowsRead         prometheus.Gauge
	RowsDropped      prometheus.Gauge
	RowsCleaned      prometheus.Gauge
	StepDuration     *prometheus.HistogramVec
	StepFailures     *prometheus.CounterVec
	ArtifactsWritten *prometheus.CounterVec
}

// NewMetrics constructs and registers all metrics on a dedicated registry
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	rowsRead := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "eda_rows_read",
		Help: "Records read from the input file.",
	})
	rowsDropped := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "eda_rows_dropped",
		Help: "Records dropped for a missing date_added or rating.",
	})
	rowsCleaned := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "eda_rows_cleaned",
		Help: "Records in the cleaned catalog.",
	})
	stepDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "eda_step_duration_seconds",
			Help:    "Wall time of each pipeline step.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"step"},
	)
	stepFailures := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eda_step_failures_total",
			Help: "Pipeline steps that returned an error.",
		},
		[]string{"step"},
	)
	artifacts := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "eda_artifacts_written_total",
			Help: "Files written by the pipeline by kind.",
		},
		[]string{"kind"},
	)

	registry.MustRegister(rowsRead, rowsDropped, rowsCleaned, stepDuration, stepFailures, artifacts)

	return &Metrics{
		Registry:         registry,
		RowsRead:         rowsRead,
		RowsDropped:      rowsDropped,
		RowsCleaned:      rowsCleaned,
		StepDuration:     stepDuration,
		StepFailures:     stepFailures,
		ArtifactsWritten: artifacts,
	}
}

// SetRows records the row counts of the load step
func (m *Metrics) SetRows(read, dropped, cleaned int) {
	if m == nil {
		return
	}
	m.RowsRead.Set(float64(read))
	m.RowsDropped.Set(float64(dropped))
	m.RowsCleaned.Set(float64(cleaned))
}

// ObserveStep records a step duration
func (m *Metrics) ObserveStep(step string, d time.Duration) {
	if m == nil {
		return
	}
	m.StepDuration.WithLabelValues(step).Observe(d.Seconds())
}

// IncFailure increments the failure counter for a step
func (m *Metrics) IncFailure(step string) {
	if m == nil {
		return
	}
	m.StepFailures.WithLabelValues(step).Inc()
}

// IncArtifact increments the artifact counter for a kind
func (m *Metrics) IncArtifact(kind string) {
	if m == nil {
		return
	}
	m.ArtifactsWritten.WithLabelValues(kind).Inc()
}

// WriteTextfile writes the registry in the Prometheus text format
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil || path == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.Registry); err != nil {
		return fmt.Errorf("write metrics %s: %w", path, err)
	}
	return nil
}
