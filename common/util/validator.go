package util

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// ValidateStruct validates a struct using validator tags
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// GetValidationErrors formats validation errors into readable messages
func GetValidationErrors(err error) []string {
	var messages []string
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return messages
	}

	for _, fieldError := range validationErrors {
		field := fieldError.Namespace()
		switch fieldError.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "required_if":
			messages = append(messages, field+" is required when "+fieldError.Param())
		case "required_with":
			messages = append(messages, field+" is required with "+fieldError.Param())
		case "min":
			messages = append(messages, field+" must be at least "+fieldError.Param())
		case "max":
			messages = append(messages, field+" must be at most "+fieldError.Param())
		case "url", "http_url":
			messages = append(messages, field+" must be a valid URL")
		case "oneof":
			messages = append(messages, field+" must be one of: "+fieldError.Param())
		case "alphanum":
			messages = append(messages, field+" must be alphanumeric")
		default:
			messages = append(messages, field+" is invalid")
		}
	}
	return messages
}

// ValidationSummary joins GetValidationErrors into one line.
func ValidationSummary(err error) string {
	messages := GetValidationErrors(err)
	if len(messages) == 0 {
		return err.Error()
	}
	return strings.Join(messages, "; ")
}
