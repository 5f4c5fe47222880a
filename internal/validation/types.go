package validation

import (
	"errors"
	"strings"
)

// matched by errors.Is for any Errors value
var ErrInvalidInput = errors.New("invalid input")

// one failed constraint, keyed by the JSON field name
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// every field that failed validation, in declaration order
type Errors []FieldError

func (e Errors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Field + ": " + fe.Message
	}

	return "validation failed: " + strings.Join(msgs, "; ")
}

func (e Errors) Is(target error) bool {
	return target == ErrInvalidInput
}

// returns the message for field, or "" when the field passed
func (e Errors) For(field string) string {
	for _, fe := range e {
		if fe.Field == field {
			return fe.Message
		}
	}

	return ""
}
