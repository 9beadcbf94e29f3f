package operations

import (
	"sync"
	"time"

	"github.com/Mansi358721/netflix-titles/internal/analytics"
	"github.com/Mansi358721/netflix-titles/internal/dataprocessing"
	"github.com/Mansi358721/netflix-titles/pkg/contracts/domain"
)

// OperationStatus represents the overall run status
type OperationStatus string

const (
	OperationStatusPending   OperationStatus = "pending"
	OperationStatusRunning   OperationStatus = "running"
	OperationStatusCompleted OperationStatus = "completed"
	OperationStatusFailed    OperationStatus = "failed"
	OperationStatusCancelled OperationStatus = "cancelled"
)

// Summaries are the tables each analysis step produced
type Summaries struct {
	TypeCounts      analytics.Counts
	Growth          []analytics.YearCount
	TopGenres       analytics.Counts
	Durations       []float64
	TopReleaseYears analytics.Counts
}

// OperationState is the state of one pipeline run. The load step sets
// Catalog; later steps only read it.
type OperationState struct {
	mu sync.RWMutex

	ID        string          `json:"id"`
	Status    OperationStatus `json:"status"`
	StartTime time.Time       `json:"start_time"`
	EndTime   *time.Time      `json:"end_time,omitempty"`

	Steps map[string]*StepState `json:"steps"`

	Catalog   *domain.Catalog            `json:"-"`
	Load      *dataprocessing.LoadResult `json:"-"`
	Summaries Summaries                  `json:"-"`
	// Artifacts lists every file written, in write order
	Artifacts []string `json:"artifacts"`

	Error error `json:"error,omitempty"`
}

// NewOperationState creates a new run state
func NewOperationState(id string) *OperationState {
	return &OperationState{
		ID:        id,
		Status:    OperationStatusPending,
		StartTime: time.Now(),
		Steps:     make(map[string]*StepState),
	}
}

// Start marks the run as running
func (p *OperationState) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Status = OperationStatusRunning
	p.StartTime = time.Now()
}

// Complete marks the run as completed
func (p *OperationState) Complete() {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now()
	p.EndTime = &now
	p.Status = OperationStatusCompleted
}

// Fail marks the run as failed
func (p *OperationState) Fail(err error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now()
	p.EndTime = &now
	p.Status = OperationStatusFailed
	p.Error = err
}

// Cancel marks the run as cancelled
func (p *OperationState) Cancel() {
	p.mu.Lock()
	defer p.mu.Unlock()
	now := time.Now()
	p.EndTime = &now
	p.Status = OperationStatusCancelled
}

// GetStage returns the state of a specific step
func (p *OperationState) GetStage(stepID string) *StepState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.Steps[stepID]
}

// SetStage updates the state of a specific step
func (p *OperationState) SetStage(stepID string, state *StepState) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Steps[stepID] = state
}

// AddArtifact records a written file
func (p *OperationState) AddArtifact(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Artifacts = append(p.Artifacts, path)
}

// Duration returns the duration of the run
func (p *OperationState) Duration() time.Duration {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.EndTime != nil {
		return p.EndTime.Sub(p.StartTime)
	}
	return time.Since(p.StartTime)
}

// GetFailedStages returns all failed steps
func (p *OperationState) GetFailedStages() []*StepState {
	p.mu.RLock()
	defer p.mu.RUnlock()
	var failed []*StepState
	for _, s := range p.Steps {
		if s.GetStatus() == StepStatusFailed {
			failed = append(failed, s)
		}
	}
	return failed
}
