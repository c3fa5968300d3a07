package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	maxTitleLength       = 200
	maxDescriptionLength = 2000
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct runs the struct's validate tags and converts failures to a ValidationError.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	verr := &ValidationError{Fields: make(map[string]string, len(fieldErrs))}
	for _, fe := range fieldErrs {
		verr.Fields[fe.Field()] = fieldMessage(fe)
	}
	return verr
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return "is invalid"
	}
}

// normalizeTitle checks the raw length and returns the trimmed, non-empty title.
func normalizeTitle(raw string) (string, error) {
	if err := validate.Var(raw, fmt.Sprintf("max=%d", maxTitleLength)); err != nil {
		return "", newValidationError("title", fmt.Sprintf("must be at most %d characters", maxTitleLength))
	}

	title := strings.TrimSpace(raw)
	if title == "" {
		return "", newValidationError("title", "Title cannot be empty")
	}
	return title, nil
}

// normalizeDescription trims the description; a blank description becomes nil.
func normalizeDescription(raw *string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	if err := validate.Var(*raw, fmt.Sprintf("max=%d", maxDescriptionLength)); err != nil {
		return nil, newValidationError("description", fmt.Sprintf("must be at most %d characters", maxDescriptionLength))
	}

	description := strings.TrimSpace(*raw)
	if description == "" {
		return nil, nil
	}
	return &description, nil
}
