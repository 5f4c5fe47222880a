// Package validation checks tool inputs and reports failures per field.
//
// Constraints are declared once on the input structs with `validate` tags,
// and a `label` tag gives the human name used in messages:
//
//	ResumeText string `json:"resumeText" validate:"required,min=100" label:"Resume text"`
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	engine     *validator.Validate
	engineOnce sync.Once
)

// returns the shared validator instance
func Engine() *validator.Validate {
	engineOnce.Do(func() {
		engine = validator.New(validator.WithRequiredStructEnabled())
		engine.RegisterTagNameFunc(jsonName)
	})

	return engine
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	if name == "" {
		return field.Name
	}

	return name
}

// validates v and returns Errors when any field fails, nil otherwise
func Validate(v any) error {
	err := Engine().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("failed to validate input: %w", err)
	}

	labels := labelsOf(v)
	out := make(Errors, 0, len(verrs))

	for _, fe := range verrs {
		label, ok := labels[fe.StructField()]
		if !ok {
			label = fe.Field()
		}

		out = append(out, FieldError{
			Field:   fe.Field(),
			Message: message(label, fe),
		})
	}

	return out
}

// collects the label tag of every top-level field, keyed by Go field name
func labelsOf(v any) map[string]string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	labels := make(map[string]string)
	if t == nil || t.Kind() != reflect.Struct {
		return labels
	}

	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if label := f.Tag.Get("label"); label != "" {
			labels[f.Name] = label
		}
	}

	return labels
}

func message(label string, fe validator.FieldError) string {
	isText := fe.Kind() == reflect.String

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required.", label)
	case "min", "gte":
		if isText {
			return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "max", "lte":
		if isText {
			return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid.", label)
	}
}

// returns the field errors carried by err, if any
func AsErrors(err error) (Errors, bool) {
	var fields Errors
	if errors.As(err, &fields) {
		return fields, true
	}

	return nil, false
}
