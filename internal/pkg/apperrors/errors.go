// Package apperrors defines the error taxonomy shared by all services. An
// AppError carries a kind and the HTTP status it maps to; the translation to
// a response happens once, in the server's error handler.
package apperrors

import (
	"errors"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindAuthentication
	KindAuthorization
	KindNotFound
	KindConflict
	KindRateLimit
)

// AppError is a user-visible error with an HTTP status. Message is safe to
// return to clients; wrap the precise cause with %w for logs instead of
// putting it here.
type AppError struct {
	Kind    Kind
	Status  int
	Message string
	cause   error
}

func (e *AppError) Error() string {
	return e.Message
}

// Unwrap exposes the internal cause for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause attaches an internal cause without changing the external message.
func (e *AppError) WithCause(err error) *AppError {
	return &AppError{Kind: e.Kind, Status: e.Status, Message: e.Message, cause: err}
}

func newError(kind Kind, status int, message string) *AppError {
	return &AppError{Kind: kind, Status: status, Message: message}
}

// NewValidation returns a 400 validation error.
func NewValidation(message string) *AppError {
	return newError(KindValidation, http.StatusBadRequest, message)
}

// NewAuthentication returns a 401 authentication error.
func NewAuthentication(message string) *AppError {
	return newError(KindAuthentication, http.StatusUnauthorized, message)
}

// NewAuthorization returns a 403 authorization error.
func NewAuthorization(message string) *AppError {
	return newError(KindAuthorization, http.StatusForbidden, message)
}

// NewNotFound returns a 404 not-found error.
func NewNotFound(message string) *AppError {
	return newError(KindNotFound, http.StatusNotFound, message)
}

// NewConflict returns a 409 conflict error.
func NewConflict(message string) *AppError {
	return newError(KindConflict, http.StatusConflict, message)
}

// NewRateLimit returns a 429 rate-limit error.
func NewRateLimit(message string) *AppError {
	return newError(KindRateLimit, http.StatusTooManyRequests, message)
}

// NewInternal returns a 500 error with a generic external message.
func NewInternal(err error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Status:  http.StatusInternalServerError,
		Message: "Internal server error",
		cause:   err,
	}
}

// FromError extracts an AppError from an error chain. Unknown errors map to
// an internal error so nothing leaks.
func FromError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewInternal(err)
}

// IsKind reports whether err is an AppError of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}
