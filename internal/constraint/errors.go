package constraint

import (
	"errors"
	"fmt"
	"strconv"
)

// Error codes for constraint validation.
const (
	CodeUnknownLimit = "UNKNOWN_LIMIT"
	CodeUnknownKind  = "UNKNOWN_KIND"
	CodeInvalidSpec  = "INVALID_SPEC"
	CodeInvalidFile  = "INVALID_FILE"
)

// Error is an input-validation error raised while building or decoding a
// constraint.
type Error struct {
	Code    string
	Field   string // offending field, when known
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsValidationError reports whether err is (or wraps) a constraint *Error.
func IsValidationError(err error) bool {
	var ce *Error
	return errors.As(err, &ce)
}

// HasCode reports whether err is (or wraps) a constraint *Error with code.
func HasCode(err error, code string) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

func withField(err error, field string) error {
	var ce *Error
	if errors.As(err, &ce) {
		out := *ce
		out.Field = field
		return &out
	}
	return err
}

func quote(s string) string {
	return strconv.Quote(s)
}
