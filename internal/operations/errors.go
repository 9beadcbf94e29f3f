package operations

import (
	"errors"
	"fmt"
)

// ErrorType represents the type of step error
type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "validation"
	ErrorTypeExecution    ErrorType = "execution"
	ErrorTypeCancellation ErrorType = "cancellation"
	ErrorTypeNotFound     ErrorType = "not_found"
)

// StepError names the pipeline step an error came from
type StepError struct {
	Type    ErrorType `json:"type"`
	Step    string    `json:"step,omitempty"`
	Message string    `json:"message"`
	Cause   error     `json:"cause,omitempty"`
}

// Error implements the error interface
func (e *StepError) Error() string {
	if e == nil {
		return "unknown step error"
	}
	msg := e.Message
	if e.Cause != nil {
		msg = e.Cause.Error()
	}
	if e.Step != "" {
		return fmt.Sprintf("%s: %s", e.Step, msg)
	}
	return msg
}

// Unwrap returns the underlying error
func (e *StepError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewValidationError creates a new validation error
func NewValidationError(step, message string) *StepError {
	return &StepError{
		Type:    ErrorTypeValidation,
		Step:    step,
		Message: message,
	}
}

// NewExecutionError creates a new execution error
func NewExecutionError(step string, cause error) *StepError {
	return &StepError{
		Type:    ErrorTypeExecution,
		Step:    step,
		Message: "step failed",
		Cause:   cause,
	}
}

// NewCancellationError creates a new cancellation error
func NewCancellationError(step string, cause error) *StepError {
	return &StepError{
		Type:    ErrorTypeCancellation,
		Step:    step,
		Message: "run was cancelled",
		Cause:   cause,
	}
}

// GetErrorType returns the type of the error
func GetErrorType(err error) ErrorType {
	if err == nil {
		return ""
	}
	var sErr *StepError
	if errors.As(err, &sErr) {
		return sErr.Type
	}
	return ErrorTypeExecution
}

// FailedStep returns the step a run failed in, if err carries one
func FailedStep(err error) (string, bool) {
	var sErr *StepError
	if errors.As(err, &sErr) && sErr.Step != "" {
		return sErr.Step, true
	}
	return "", false
}

// ErrStepNotFound is returned when a step ID is not registered
var ErrStepNotFound = &StepError{
	Type:    ErrorTypeNotFound,
	Message: "step not found",
}
