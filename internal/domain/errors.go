package domain

import (
	"fmt"
	"net/http"
	"strings"
)

// ErrorKind tags an AppError so callers can match on it exhaustively.
type ErrorKind string

const (
	// ErrKindValidation indicates caller-supplied input violated a schema.
	ErrKindValidation ErrorKind = "validation"

	// ErrKindNotFound indicates a referenced entity does not exist.
	ErrKindNotFound ErrorKind = "not_found"
)

// Issue describes a single validation failure on one field.
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// AppError is an expected, recoverable domain failure. It is carried inside
// a Result rather than returned as a plain error; infrastructure failures
// (network, provider, storage) stay plain errors and propagate uncaught.
type AppError struct {
	Kind     ErrorKind `json:"kind"`
	Message  string    `json:"message"`
	Issues   []Issue   `json:"issues,omitempty"`   // validation only
	Resource string    `json:"resource,omitempty"` // not_found only
	ID       string    `json:"id,omitempty"`       // not_found only
}

func (e *AppError) Error() string {
	if e.Kind == ErrKindValidation && len(e.Issues) > 0 {
		parts := make([]string, len(e.Issues))
		for i, issue := range e.Issues {
			parts[i] = fmt.Sprintf("%s: %s", issue.Field, issue.Message)
		}
		return fmt.Sprintf("%s (%s)", e.Message, strings.Join(parts, "; "))
	}
	return e.Message
}

// HTTPStatus maps the error kind to the status a boundary should answer with.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case ErrKindValidation:
		return http.StatusBadRequest
	case ErrKindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// NewValidationError builds a validation AppError from structured issues.
func NewValidationError(issues []Issue) *AppError {
	return &AppError{
		Kind:    ErrKindValidation,
		Message: "validation failed",
		Issues:  issues,
	}
}

// NewNotFoundError builds a not_found AppError for the given resource and id.
func NewNotFoundError(resource, id string) *AppError {
	return &AppError{
		Kind:     ErrKindNotFound,
		Message:  fmt.Sprintf("%s not found: %s", resource, id),
		Resource: resource,
		ID:       id,
	}
}
