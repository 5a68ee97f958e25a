// Package apperr defines the typed failures the service layer raises and the
// boundary maps to client-error status codes. Anything not of this type is an
// infrastructure error and surfaces as a generic server failure.
package apperr

import "fmt"

// Kind classifies a failure for the boundary layer.
type Kind string

const (
	KindUnauthorized Kind = "unauthorized"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "notFound"
	KindConflict     Kind = "conflict"
)

// Error is a typed failure carrying the offending entity in its message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unauthorized signals a bad credential or secret for the given entity.
func Unauthorized(entity string) *Error {
	return &Error{
		Kind:    KindUnauthorized,
		Message: fmt.Sprintf("you don't have permission to do this, check your %q", entity),
	}
}

// Forbidden signals that policy or card state disallows the operation.
func Forbidden(entity string) *Error {
	return &Error{
		Kind:    KindForbidden,
		Message: fmt.Sprintf("you don't have permission to do this, check your %q", entity),
	}
}

// NotFound signals a missing entity.
func NotFound(entity string) *Error {
	return &Error{
		Kind:    KindNotFound,
		Message: fmt.Sprintf("could not find specified %q", entity),
	}
}

// Conflict signals a duplicate or already-in-state entity.
func Conflict(entity string) *Error {
	return &Error{
		Kind:    KindConflict,
		Message: fmt.Sprintf("the specified %q already exists", entity),
	}
}
