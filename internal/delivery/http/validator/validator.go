// Package validator adapts go-playground/validator to echo's Validator
// interface and to the canonical rejection contract.
package validator

import (
	"reflect"
	"strings"

	domainerrors "roster/internal/domain/errors"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// echoValidator implements echo.Validator on top of go-playground/validator.
type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator. Field names in rejection messages come
// from the json tag so they match the wire contract.
func New() *echoValidator {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}

		return name
	})

	return &echoValidator{validate: validate}
}

// Validate checks the struct's validate tags and rejects on the first
// violation, naming the offending field with a human-readable reason.
// Multiple errors are never aggregated.
func (v *echoValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
		return domainerrors.ValidationError(describe(validationErrs[0]))
	}

	return domainerrors.ErrValidationFailed.WrapMessage("request validation failed")
}

// describe renders a single violation as "<field> <reason>".
func describe(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "min":
		return field + " must be at least " + fieldErr.Param() + " characters long"
	default:
		return field + " is invalid"
	}
}
