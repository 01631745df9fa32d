package rollout

import (
	"errors"
	"fmt"
)

// ValidationErrorCode categorizes rejected requests.
type ValidationErrorCode string

const (
	// ErrCodeInvalidTolerance indicates a negative attempt budget.
	ErrCodeInvalidTolerance ValidationErrorCode = "INVALID_TOLERANCE"

	// ErrCodeUnknownMethod indicates an unrecognized rolling method.
	ErrCodeUnknownMethod ValidationErrorCode = "UNKNOWN_METHOD"

	// ErrCodeInvalidConstraint indicates a constraint that failed to compile.
	ErrCodeInvalidConstraint ValidationErrorCode = "INVALID_CONSTRAINT"
)

// ValidationError reports a search request rejected before sampling began.
type ValidationError struct {
	Code    ValidationErrorCode
	Message string
	Err     error // Underlying error (optional)
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying error to errors.Is / errors.As.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewToleranceError creates a ValidationError for a negative tolerance.
func NewToleranceError(tolerance int) *ValidationError {
	return &ValidationError{
		Code:    ErrCodeInvalidTolerance,
		Message: fmt.Sprintf("tolerance must be positive, got %d", tolerance),
	}
}

// IsValidationError returns true if err is (or wraps) a *ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// ValidationCode returns the code of a wrapped *ValidationError, or "" when
// err is not one.
func ValidationCode(err error) ValidationErrorCode {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code
	}
	return ""
}
