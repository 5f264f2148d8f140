package exceptions

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validationMessages = map[string]string{
	"required":    "is required",
	"email":       "must be a valid email",
	"min":         "must be at least %s characters long",
	"max":         "maximum at %s characters long",
	"oneof":       "must be one of [%s]",
	"required_if": "is required when %s",
}

// FormatFirstValidationError turns the first validator error into a
// client-facing message; non-validator errors get a generic fallback.
func FormatFirstValidationError(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return "invalid input"
	}

	first := validationErrors[0]
	field := strings.ToLower(first.Field())

	message, exists := validationMessages[first.Tag()]
	if !exists {
		return fmt.Sprintf("%s is invalid", field)
	}
	if strings.Contains(message, "%s") {
		message = fmt.Sprintf(message, first.Param())
	}
	return fmt.Sprintf("%s %s", field, message)
}
