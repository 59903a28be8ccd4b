package model

import (
	"errors"
	"fmt"
)

var (
	ErrValidation  = errors.New("validation failed")
	ErrNotFound    = errors.New("product not found")
	ErrIO          = errors.New("storage i/o error")
	ErrCorruptData = errors.New("corrupt catalog data")
)

// ValidationError reports bad caller input. It matches ErrValidation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// ErrResetNotConfirmed is returned by ResetAll when the caller did not pass
// the confirmation flag.
var ErrResetNotConfirmed = &ValidationError{Message: "reset requires explicit confirmation"}

// IOError wraps an unexpected filesystem failure.
func IOError(op, path string, err error) error {
	return fmt.Errorf("%w: %s %s: %w", ErrIO, op, path, err)
}

// CorruptError reports an unusable row or header in the backing table.
func CorruptError(line int, format string, args ...any) error {
	return fmt.Errorf("%w: line %d: %s", ErrCorruptData, line, fmt.Sprintf(format, args...))
}
