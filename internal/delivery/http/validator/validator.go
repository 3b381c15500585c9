// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "ecowave/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps the validator so echo can run struct validation on
// bound request bodies.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator for echo.Echo.Validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as the shared
// validation error so the error handler renders a consistent envelope.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
