// Package errors defines the structured application error type and the
// taxonomy used across the service: validation failures (client-caused),
// authentication/authorization failures, database failures and generic
// server errors, each carrying the HTTP status it maps to.
package errors

import (
	"fmt"
	"net/http"

	"github.com/Alex3925/company-suggestion-box/logger"
)

type ErrorType string

const (
	ValidationError ErrorType = "VALIDATION_ERROR"
	AuthError       ErrorType = "AUTHENTICATION_ERROR"
	ForbiddenError  ErrorType = "FORBIDDEN"
	DatabaseError   ErrorType = "DATABASE_ERROR"
	RateLimitError  ErrorType = "RATE_LIMIT_EXCEEDED"
	ServerError     ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error. Message is safe to
// surface to the caller; Detail and Raw stay server-side.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// GetHTTPStatus returns the HTTP status the error maps to.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus != 0 {
		return e.HTTPStatus
	}
	return getHTTPStatus(e.Type)
}

func (e *AppError) Unwrap() error {
	return e.Raw
}

// ValidationFailed builds a 400 error whose message carries the specific
// rejection reason shown to the caller.
func ValidationFailed(message string, detail string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
	}
}

// AuthenticationFailed builds a 401 error with a static message.
func AuthenticationFailed(message string) *AppError {
	return &AppError{
		Type:       AuthError,
		Message:    message,
		HTTPStatus: http.StatusUnauthorized,
	}
}

// Forbidden builds a 403 error with a static message.
func Forbidden(message string) *AppError {
	return &AppError{
		Type:       ForbiddenError,
		Message:    message,
		HTTPStatus: http.StatusForbidden,
	}
}

// NewDatabaseError logs the underlying failure with detail and returns a
// sanitized 500 error; internal error text never reaches the caller.
func NewDatabaseError(err error) *AppError {
	logger.GetLogger().Errorw("Database error", "error", err)
	return &AppError{
		Type:       DatabaseError,
		Message:    "Server error.",
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// RateLimitExceeded builds a 429 error carrying the retry window in seconds.
func RateLimitExceeded(message string, retryAfterSeconds int) *AppError {
	return &AppError{
		Type:       RateLimitError,
		Message:    message,
		Detail:     fmt.Sprintf("retry after %d seconds", retryAfterSeconds),
		HTTPStatus: http.StatusTooManyRequests,
	}
}

func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case AuthError:
		return http.StatusUnauthorized
	case ForbiddenError:
		return http.StatusForbidden
	case RateLimitError:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
