package services

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument marks a caller-contract violation: a non-positive page
// size, a negative estimator input or an invalid form field.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrNotFound is returned for unknown listing or agent ids.
var ErrNotFound = errors.New("not found")

// ValidationError describes a rejected input field. It unwraps to
// ErrInvalidArgument.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Msg
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Msg)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

func invalid(field, format string, args ...any) error {
	return &ValidationError{Field: field, Msg: fmt.Sprintf(format, args...)}
}
