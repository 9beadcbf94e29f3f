package operations_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "github.com/Mansi358721/netflix-titles/internal/errors"
	"github.com/Mansi358721/netflix-titles/internal/operations"
)

func TestStepError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *operations.StepError
		want string
	}{
		{
			name: "with cause",
			err:  operations.NewExecutionError("genres", errors.New("disk full")),
			want: "genres: disk full",
		},
		{
			name: "without cause",
			err:  operations.NewValidationError("types", "catalog not loaded"),
			want: "types: catalog not loaded",
		},
		{
			name: "without step",
			err:  &operations.StepError{Message: "boom"},
			want: "boom",
		},
		{
			name: "nil",
			err:  nil,
			want: "unknown step error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestStepError_UnwrapKeepsAppErrorType(t *testing.T) {
	cause := apperrors.NewFileNotFoundError("/data/netflix_titles.csv", nil)
	err := fmt.Errorf("run: %w", operations.NewExecutionError("load", cause))

	assert.True(t, apperrors.IsNotFound(err))
	path, ok := apperrors.PathOf(err)
	assert.True(t, ok)
	assert.Equal(t, "/data/netflix_titles.csv", path)

	step, ok := operations.FailedStep(err)
	assert.True(t, ok)
	assert.Equal(t, "load", step)
}

func TestGetErrorType(t *testing.T) {
	assert.Equal(t, operations.ErrorType(""), operations.GetErrorType(nil))
	assert.Equal(t, operations.ErrorTypeValidation, operations.GetErrorType(operations.NewValidationError("x", "y")))
	assert.Equal(t, operations.ErrorTypeCancellation, operations.GetErrorType(operations.NewCancellationError("x", nil)))
	assert.Equal(t, operations.ErrorTypeExecution, operations.GetErrorType(errors.New("plain")))

	_, ok := operations.FailedStep(errors.New("plain"))
	assert.False(t, ok)
}
