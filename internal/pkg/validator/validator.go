// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can rely on the validate tags on request models.
package validator

import (
	"github.com/go-playground/validator/v10"

	"github.com/prasetyadi/temanku/internal/pkg/apperrors"
)

// RequestValidator implements echo.Validator.
type RequestValidator struct {
	validate *validator.Validate
}

func NewRequestValidator() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

// Validate checks the struct tags and maps failures to a validation error.
func (v *RequestValidator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return apperrors.NewValidation("Invalid request payload").WithCause(err)
	}
	return nil
}
