package predicate

import (
	"errors"
	"fmt"
)

// CompileErrorCode categorizes compile failures.
type CompileErrorCode string

const (
	// ErrCodeUnknownConstraint indicates a nil or unrecognized constraint variant.
	ErrCodeUnknownConstraint CompileErrorCode = "UNKNOWN_CONSTRAINT"

	// ErrCodeUnknownLimit indicates a comparison mode outside AT_LEAST, AT_MOST, EXACTLY.
	ErrCodeUnknownLimit CompileErrorCode = "UNKNOWN_LIMIT"
)

// CompileError reports a constraint that cannot be turned into a Predicate.
type CompileError struct {
	Code    CompileErrorCode
	Field   string
	Message string
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsCompileError returns true if err is (or wraps) a *CompileError.
func IsCompileError(err error) bool {
	var ce *CompileError
	return errors.As(err, &ce)
}
