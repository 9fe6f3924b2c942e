package exceptions

import (
	"benefits-portal-service/internal/pkg/constvars"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors turns validator errors into the client facing field list.
// Field names are the json names registered on the validator.
func FormatValidationErrors(err error) []FieldError {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []FieldError{{Field: "body", Message: constvars.ErrDevInvalidInput}}
	}

	fieldErrors := make([]FieldError, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   fieldPath(fieldErr),
			Message: formatTagMessage(fieldErr.Tag(), fieldErr.Param()),
		})
	}
	return fieldErrors
}

func FormatFirstValidationError(err error) string {
	fieldErrors := FormatValidationErrors(err)
	if len(fieldErrors) == 0 {
		return constvars.ErrClientCannotProcessRequest
	}
	return fieldErrors[0].Field + " " + fieldErrors[0].Message
}

func formatTagMessage(tag, param string) string {
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		return "is invalid"
	}
	if constvars.TagsWithParams[tag] {
		if tag == "oneof" {
			return strings.Replace(customMessage, "%s", strings.Join(strings.Fields(param), ", "), 1)
		}
		return strings.Replace(customMessage, "%s", param, 1)
	}
	return customMessage
}

// fieldPath drops the top level struct name so nested fields read as "fields[0].value".
func fieldPath(fieldErr validator.FieldError) string {
	namespace := fieldErr.Namespace()
	if idx := strings.Index(namespace, "."); idx >= 0 {
		return namespace[idx+1:]
	}
	return fieldErr.Field()
}
