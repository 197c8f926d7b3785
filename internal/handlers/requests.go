package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/nfrund/ledgerline/internal/leads"
)

// CustomValidator wraps the go-playground/validator library to implement Echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

// NewValidator creates a new CustomValidator using the lead form's field
// names in its errors.
func NewValidator() *CustomValidator {
	return &CustomValidator{validator: leads.NewValidator()}
}

// Validate implements the echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
