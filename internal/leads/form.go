// Package leads implements the lead-capture widget: form validation, the
// per-widget submission state machine and the relay to the form processor.
package leads

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/nfrund/ledgerline/internal/domain"
)

// Form is one submission of the lead widget.
type Form struct {
	WidgetID   string `form:"widget_id"`
	Name       string `form:"name" validate:"required,max=200"`
	Email      string `form:"email" validate:"required,email,max=254"`
	Message    string `form:"message" validate:"required,max=5000"`
	Consent    bool   `form:"consent" validate:"required"`
	Botcheck   string `form:"botcheck"`
	SourcePage string `form:"source_page"`
	Location   string `form:"location"`
}

// Normalize trims the free-text fields. Botcheck is left untouched.
func (f *Form) Normalize() {
	f.WidgetID = strings.TrimSpace(f.WidgetID)
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Message = strings.TrimSpace(f.Message)
	f.SourcePage = strings.TrimSpace(f.SourcePage)
	f.Location = strings.TrimSpace(f.Location)
}

// Lead converts the form into the relay payload.
func (f Form) Lead() domain.Lead {
	return domain.Lead{
		WidgetID:   f.WidgetID,
		Name:       f.Name,
		Email:      f.Email,
		Message:    f.Message,
		Consent:    f.Consent,
		Botcheck:   f.Botcheck,
		SourcePage: f.SourcePage,
	}
}

// FieldErrors maps a form field name to the message shown under its input.
type FieldErrors map[string]string

// Get returns the message for field, or "".
func (fe FieldErrors) Get(field string) string {
	return fe[field]
}

var fieldMessages = map[string]map[string]string{
	"name": {
		"required": "Please tell us your name.",
		"max":      "Please keep your name under 200 characters.",
	},
	"email": {
		"required": "Please enter your email address.",
		"email":    "Please enter a valid email address.",
		"max":      "Please keep your email address under 254 characters.",
	},
	"message": {
		"required": "Please tell us how we can help.",
		"max":      "Please keep your message under 5000 characters.",
	},
	"consent": {
		"required": "Please confirm we may contact you about your enquiry.",
	},
}

// NewValidator returns a validator that reports fields by their form names.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks a normalized form. It returns nil when every field is valid.
func Validate(v *validator.Validate, f Form) FieldErrors {
	err := v.Struct(f)
	if err == nil {
		return nil
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return FieldErrors{"form": "We could not read your enquiry. Please try again."}
	}

	errs := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		msg, ok := fieldMessages[field][fe.Tag()]
		if !ok {
			msg = "Please check this field."
		}
		errs[field] = msg
	}
	return errs
}
