package todo

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// validateRequest runs struct tag validation and converts the first
// failure into a *ValidationError
func validateRequest(req any) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	field := strings.ToLower(fe.Field())
	switch {
	case field == "title":
		return ErrEmptyTitle
	case fe.Tag() == "gt":
		return &ValidationError{Field: field, Message: "must be a positive integer"}
	default:
		return &ValidationError{Field: field, Message: "is invalid"}
	}
}
