// Package validation checks request shapes with validator/v10 and the
// account credential rules.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"brainly/internal/models"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator and reports field violations.
type Validator struct {
	v *validator.Validate
}

// New creates a validator that names fields by their JSON tags and knows
// the contenttype and password rules.
func New() *Validator {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("contenttype", func(fl validator.FieldLevel) bool {
		return models.ContentType(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
		return len(PasswordViolations(fl.Field().String())) == 0
	})

	return &Validator{v: v}
}

// Validate returns the rule violations of s, or nil when s is valid.
// Errors other than rule failures are reported as a single violation.
func (v *Validator) Validate(s any) []models.FieldViolation {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return []models.FieldViolation{{Message: err.Error()}}
	}

	violations := make([]models.FieldViolation, 0, len(validationErrs))
	for _, e := range validationErrs {
		if e.Tag() == "password" {
			for _, msg := range PasswordViolations(fmt.Sprint(e.Value())) {
				violations = append(violations, models.FieldViolation{Field: e.Field(), Message: msg})
			}
			continue
		}
		violations = append(violations, models.FieldViolation{Field: e.Field(), Message: friendlyMessage(e)})
	}
	return violations
}

func friendlyMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind() == reflect.Slice {
			return fmt.Sprintf("must contain at least %s items", e.Param())
		}
		return fmt.Sprintf("must be at least %s characters", e.Param())
	case "max":
		return fmt.Sprintf("must not exceed %s characters", e.Param())
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of: " + e.Param()
	case "contenttype":
		return "must be one of: twitter youtube"
	default:
		return "is invalid"
	}
}
