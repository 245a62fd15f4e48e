package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Message joins FormatValidationErrors into a single line for the envelope
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	field := e.Field()
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", field)

	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", field, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s: must contain at least %s items", field, param)
		}
		return fmt.Sprintf("%s: must be at least %s", field, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", field, param)
		}
		if e.Kind().String() == "slice" {
			return fmt.Sprintf("%s: must contain at most %s items", field, param)
		}
		return fmt.Sprintf("%s: must be at most %s", field, param)

	case "gte":
		return fmt.Sprintf("%s: must be greater than or equal to %s", field, param)

	case "lte":
		return fmt.Sprintf("%s: must be less than or equal to %s", field, param)

	case "len":
		return fmt.Sprintf("%s: must be exactly %s characters", field, param)

	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", field, strings.Join(strings.Fields(param), ", "))

	case "email":
		return fmt.Sprintf("%s: must be a valid email address", field)

	case "valid_phone":
		return fmt.Sprintf("%s: must be a phone number with 7-15 digits", field)

	case "gtefield":
		return fmt.Sprintf("%s: must be greater than or equal to %s", field, param)

	default:
		return fmt.Sprintf("%s: failed validation (%s)", field, e.Tag())
	}
}
