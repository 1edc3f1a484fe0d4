package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for the HTTP surface.
type Kind int

const (
	// KindValidation marks a missing or malformed required field.
	KindValidation Kind = iota
	// KindConflict marks a duplicate unique identity at registration.
	KindConflict
	// KindAuth marks a missing or invalid session.
	KindAuth
	// KindForbidden marks a valid session with the wrong role.
	KindForbidden
	// KindNotFound marks an absent mutation target.
	KindNotFound
	// KindDependency marks a collaborator failure.
	KindDependency
)

// Error carries a client-safe message plus an optional wrapped cause.
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

func (e *Error) Unwrap() error { return e.Err }

func Validation(msg string) error { return &Error{Kind: KindValidation, Message: msg} }
func Conflict(msg string) error   { return &Error{Kind: KindConflict, Message: msg} }
func Auth(msg string) error       { return &Error{Kind: KindAuth, Message: msg} }
func Forbidden(msg string) error  { return &Error{Kind: KindForbidden, Message: msg} }
func NotFound(msg string) error   { return &Error{Kind: KindNotFound, Message: msg} }

// Dependency wraps a collaborator failure. The operation name is part of
// the message shown to operators, not to clients.
func Dependency(op string, err error) error {
	return &Error{Kind: KindDependency, Message: op + " failed", Err: err}
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// Status maps an error to its HTTP status code. Unknown errors are treated
// as dependency failures.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Kind {
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuth:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message safe to send to the caller. Dependency
// causes stay server-side.
func ClientMessage(err error) string {
	var e *Error
	if !errors.As(err, &e) || e.Kind == KindDependency {
		return "Internal server error"
	}
	return e.Message
}
