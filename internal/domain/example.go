package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// Example is the template's domain entity. ID and CreatedAt are assigned by
// the service on creation and never change afterwards.
type Example struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateExampleInput is the caller-supplied payload for creating an Example.
type CreateExampleInput struct {
	Name        string `json:"name"        validate:"required,min=1,max=100"`
	Description string `json:"description" validate:"omitempty"`
}

// ValidateCreateExampleInput checks the input against the Example schema and
// returns a validation AppError carrying one issue per violated field.
func ValidateCreateExampleInput(validate *validator.Validate, input CreateExampleInput) *AppError {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewValidationError([]Issue{{Field: "input", Message: err.Error()}})
	}

	issues := make([]Issue, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		issues = append(issues, Issue{
			Field:   strings.ToLower(fe.Field()),
			Message: issueMessage(fe),
		})
	}
	return NewValidationError(issues)
}

func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
