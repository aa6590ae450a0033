// Package validation checks entity inputs against their struct tags and
// reports every violated field at once.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"direct-transport-es/internal/apperr"
)

var messages = map[string]string{
	"required": "field '%s' is required",
	"email":    "field '%s' must be a valid email address",
	"min":      "field '%s' must be at least %s characters long",
	"max":      "field '%s' must be no longer than %s characters",
	"gte":      "field '%s' must be greater than or equal to %s",
	"lte":      "field '%s' must be less than or equal to %s",
	"oneof":    "field '%s' must be one of [%s]",
}

// Validator validates domain inputs.
type Validator struct {
	v *validator.Validate
}

// New returns a Validator reporting fields by their JSON names.
func New() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)
	return &Validator{v: v}
}

// Struct validates s. It returns nil or an *apperr.ValidationError listing
// every failed field in declaration order.
func (v *Validator) Struct(s any) error {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate %T: %w", s, err)
	}

	out := &apperr.ValidationError{Fields: make([]apperr.FieldViolation, 0, len(fieldErrs))}
	for _, fe := range fieldErrs {
		out.Fields = append(out.Fields, apperr.FieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Param:   fe.Param(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	tmpl, ok := messages[fe.Tag()]
	if !ok {
		return fmt.Sprintf("field '%s' is invalid: %s", fe.Field(), fe.Tag())
	}
	if strings.Count(tmpl, "%s") == 2 {
		return fmt.Sprintf(tmpl, fe.Field(), fe.Param())
	}
	return fmt.Sprintf(tmpl, fe.Field())
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}
