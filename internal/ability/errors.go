package ability

import (
	"errors"
	"fmt"
)

// ErrUnknownMethod is matched by every *MethodError via errors.Is.
var ErrUnknownMethod = errors.New("unknown rolling method")

// MethodError reports a method selector that names no rolling method.
type MethodError struct {
	Method string
}

// Error implements the error interface.
func (e *MethodError) Error() string {
	return fmt.Sprintf("UNKNOWN_METHOD: %q is not one of %v", e.Method, Methods)
}

// Is lets errors.Is(err, ErrUnknownMethod) match.
func (e *MethodError) Is(target error) bool {
	return target == ErrUnknownMethod
}
