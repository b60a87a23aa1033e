// Package apperr defines the error values returned by focusquest
package apperr

import (
	"fmt"
)

// Error is an error with a message template. The template is formatted with
// Fmt and an underlying cause can be attached with Wrap.
type Error struct {
	Cause   error
	Message string
	Context []any
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.Context) > 0 {
		msg = fmt.Sprintf(e.Message, e.Context...)
	}

	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	return msg
}

// Fmt returns a copy of the error with the message template arguments set.
func (e *Error) Fmt(args ...any) *Error {
	err := *e
	err.Context = args

	return &err
}

// Wrap returns a copy of the error that wraps cause.
func (e *Error) Wrap(cause error) *Error {
	err := *e
	err.Cause = cause

	return &err
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target was created from the same template as e.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Message == e.Message
}
