// Package errs defines the error taxonomy shared by the service layer.
// Services return errors tagged with a Kind; the HTTP boundary maps kinds to
// response statuses without inspecting message text.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the transport boundary.
type Kind string

// Error kinds. Validation and Authorization are caller faults and are never
// retried; NotFound covers missing referenced records; Dependency covers an
// unreachable or failing collaborator (Hub, database).
const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
	KindDependency    Kind = "dependency"
	KindUnknown       Kind = "unknown"
)

// Error is a kind-tagged error, optionally wrapping a cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Validationf reports malformed or out-of-range caller input.
func Validationf(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Authorizationf reports a denied or unsatisfiable permission check.
func Authorizationf(format string, args ...interface{}) error {
	return &Error{Kind: KindAuthorization, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf reports a missing referenced record.
func NotFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Dependency reports a failing external collaborator, preserving the cause.
func Dependency(msg string, err error) error {
	return &Error{Kind: KindDependency, Message: msg, Err: err}
}
