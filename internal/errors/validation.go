package errors

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError is a single field failure surfaced to the UI layer.
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
	Rule    string      `json:"rule,omitempty"`
}

// ValidationErrors is a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}
	if len(ve) == 1 {
		return fmt.Sprintf("validation failed: %s", ve[0].Message)
	}
	return fmt.Sprintf("validation failed: %d field errors", len(ve))
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// Fields flattens the collection into the field -> message pairs the UI
// renders next to inputs.
func (ve ValidationErrors) Fields() map[string]string {
	fields := make(map[string]string, len(ve))
	for _, e := range ve {
		if _, exists := fields[e.Field]; !exists {
			fields[e.Field] = e.Message
		}
	}
	return fields
}

func NewValidationError(field, message string, value interface{}) *ValidationError {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// ToValidationErrors converts validator.ValidationErrors to our custom type.
func ToValidationErrors(err error) ValidationErrors {
	var errs ValidationErrors

	if validatorErr, ok := err.(validator.ValidationErrors); ok {
		for _, fieldErr := range validatorErr {
			errs = append(errs, ValidationError{
				Field:   fieldErr.Field(),
				Message: getErrorMessage(fieldErr),
				Value:   fieldErr.Value(),
				Rule:    fieldErr.Tag(),
			})
		}
	}

	return errs
}

// Field-specific "required" wording, matching what the forms show.
var requiredMessages = map[string]string{
	"email":         "Email is required",
	"website":       "Website URL is required",
	"first_name":    "First name is required",
	"last_name":     "Last name is required",
	"company":       "Company name is required",
	"business_type": "Business type is required",
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		if msg, ok := requiredMessages[err.Field()]; ok {
			return msg
		}
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Please enter a valid email address"
	case "website":
		return "Please enter a valid website URL"
	case "phone":
		return "Please enter a valid phone number"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", err.Param())
	default:
		return fmt.Sprintf("validation failed for rule '%s'", err.Tag())
	}
}
