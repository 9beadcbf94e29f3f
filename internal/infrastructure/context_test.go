package infrastructure

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureRunID(t *testing.T) {
	ctx := EnsureRunID(context.Background())
	runID := GetRunID(ctx)

	_, err := uuid.Parse(runID)
	require.NoError(t, err)

	// existing id is kept
	assert.Equal(t, runID, GetRunID(EnsureRunID(ctx)))
}

func TestGetRunID_Missing(t *testing.T) {
	assert.Empty(t, GetRunID(context.Background()))
}

func TestWithError(t *testing.T) {
	logger := GetLogger()
	assert.Same(t, logger, WithError(logger, nil))
	assert.NotSame(t, logger, WithError(logger, errors.New("boom")))
}

func TestWithComponent_NilLogger(t *testing.T) {
	assert.NotNil(t, WithComponent(nil, "loader"))
}
