// Package serrors classifies failures by kind (validation, configuration, not
// found, ...) independently from their cause. The HTTP layer maps kinds to
// status codes, the workers use them to tell retryable failures apart.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is a sentinel naming a class of failure. Its value doubles as the
// error code returned by the API.
type Kind string

func (k Kind) Error() string { return string(k) }

const (
	ErrNotFound     Kind = "NOT_FOUND"
	ErrUnauthorized Kind = "UNAUTHORIZED"
	ErrForbidden    Kind = "FORBIDDEN"
	ErrBadRequest   Kind = "BAD_REQUEST"
	ErrConflict     Kind = "CONFLICT"
	ErrInternal     Kind = "INTERNAL"
	ErrTimeout      Kind = "TIMEOUT"
	ErrUnavailable  Kind = "UNAVAILABLE"
	ErrRateLimited  Kind = "RATE_LIMITED"

	// ErrValidation means a business rule rejected the operation before any
	// side effect, e.g. an unknown event, an open circuit or a posted job.
	ErrValidation Kind = "VALIDATION"

	// ErrConfiguration means provider settings are missing or invalid. It is
	// never retried.
	ErrConfiguration Kind = "CONFIGURATION"
)

// KindOf returns the kind carried anywhere in the chain of err, or "".
func KindOf(err error) Kind {
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ""
}

// Error attaches a Kind and a message to an optional cause. errors.Is and
// errors.As match both the kind and the cause.
type Error struct {
	kind  Kind
	msg   string
	cause error
}

// With returns an error of kind k without a cause.
func With(k Kind, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...)}
}

// Wrap returns an error of kind k caused by err. The message is prepended to
// the cause like fmt.Errorf("msg: %w", err) does.
func Wrap(k Kind, err error, format string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(format, args...), cause: err}
}

func (e *Error) Error() string {
	switch {
	case e.cause == nil && e.msg == "":
		return e.kind.Error()
	case e.cause == nil:
		return e.msg
	case e.msg == "":
		return e.cause.Error()
	default:
		return e.msg + ": " + e.cause.Error()
	}
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Is(target error) bool {
	if k, ok := target.(Kind); ok {
		return e.kind == k
	}

	return false
}

func (e *Error) As(target any) bool {
	if k, ok := target.(*Kind); ok {
		*k = e.kind

		return true
	}

	return false
}

// Kind returns the kind of e.
func (e *Error) Kind() Kind { return e.kind }
