package todo

import (
	"errors"
	"fmt"
)

// Todo-related errors
var (
	// ErrTodoNotFound is returned when no todo has the requested ID
	ErrTodoNotFound = errors.New("todo not found")

	// ErrValidation is matched by every *ValidationError
	ErrValidation = errors.New("validation failed")

	// Validation errors
	ErrEmptyTitle = &ValidationError{Field: "title", Message: "Title is required"}
)

// ValidationError reports invalid caller input. Nothing is persisted when
// a ValidationError is returned.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// Is makes errors.Is(err, ErrValidation) true for any ValidationError
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
