// Package apperr defines the error type used throughout tomato.
package apperr

import "fmt"

// Error is a sentinel error whose message may contain fmt verbs that
// are filled in with Fmt at the call site.
type Error struct {
	Cause   error
	Message string
	args    []any
}

func (e *Error) Error() string {
	msg := e.Message
	if len(e.args) > 0 {
		msg = fmt.Sprintf(e.Message, e.args...)
	}

	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	return msg
}

// Fmt fills the message verbs with the provided arguments. The
// returned error matches the receiver under errors.Is.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message: e.Message,
		Cause:   e.Cause,
		args:    args,
	}
}

// Wrap attaches an underlying cause.
func (e *Error) Wrap(cause error) *Error {
	return &Error{
		Message: e.Message,
		Cause:   cause,
		args:    e.args,
	}
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.Message == t.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}
