// Package validation holds the per-field rules every Event and Booking must pass
// before it is committed. Rules are declared as `validate` struct tags on the
// domain types and evaluated with go-playground/validator.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	validatorengine "github.com/go-playground/validator/v10"

	"github.com/Kirubel-Te/Event-Next/internal/domain"
)

// emailShape is the basic local@domain.tld shape; deliverability is not checked.
var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validator evaluates the rule set.
type Validator struct {
	engine *validatorengine.Validate
}

// New returns a Validator with the notblank and emailshape rules registered.
func New() *Validator {
	ve := validatorengine.New()
	ve.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// Registration only fails for empty tags or nil funcs.
	_ = ve.RegisterValidation("notblank", func(fl validatorengine.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = ve.RegisterValidation("emailshape", func(fl validatorengine.FieldLevel) bool {
		return emailShape.MatchString(fl.Field().String())
	})
	return &Validator{engine: ve}
}

// Event checks an event's fields. It returns nil or domain.ValidationErrors.
func (v *Validator) Event(e *domain.Event) error {
	return v.validate(e)
}

// Booking checks a booking's fields. It returns nil or domain.ValidationErrors.
func (v *Validator) Booking(b *domain.Booking) error {
	return v.validate(b)
}

func (v *Validator) validate(data any) error {
	err := v.engine.Struct(data)
	if err == nil {
		return nil
	}
	var fieldErrs validatorengine.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	out := make(domain.ValidationErrors, 0, len(fieldErrs))
	seen := make(map[string]struct{}, len(fieldErrs))
	for _, fe := range fieldErrs {
		field, _, item := strings.Cut(fe.Field(), "[")
		if _, ok := seen[field]; ok {
			continue
		}
		seen[field] = struct{}{}
		out = append(out, translate(field, item, fe))
	}
	return out
}

func translate(field string, item bool, fe validatorengine.FieldError) *domain.ValidationError {
	switch {
	case fe.Tag() == "emailshape":
		return domain.NewValidationError(field, domain.KindInvalidFormat, fmt.Sprintf("%s must be a valid email address", field))
	case item:
		return domain.NewValidationError(field, domain.KindRequired, fmt.Sprintf("%s must not contain blank items", field))
	case fe.Kind() == reflect.Slice:
		return domain.NewValidationError(field, domain.KindRequired, fmt.Sprintf("%s must contain at least one item", field))
	}
	return domain.NewValidationError(field, domain.KindRequired, fmt.Sprintf("%s is required", field))
}
