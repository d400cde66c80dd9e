package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrPostNotFound    = errors.New("blog post not found")
	ErrForbidden       = errors.New("forbidden")
	ErrUnauthorized    = errors.New("authentication required")
	ErrTokenInvalid    = errors.New("invalid jwt token")
	ErrValidation      = errors.New("validation failed")
)

// FieldError - ошибка конкретного поля входных данных
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError несет список ошибок по полям; errors.Is(err, ErrValidation) == true
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
