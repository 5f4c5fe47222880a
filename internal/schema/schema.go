// Package schema derives JSON Schemas from Go result types and checks
// model output against them.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
)

// Schema is a JSON Schema in its decoded map form.
type Schema map[string]interface{}

var reflector = &jsonschema.Reflector{
	DoNotReference: true,
	ExpandedStruct: true,
}

// For reflects the schema of T. Struct tags drive it: fields without
// omitempty are required, and `jsonschema:"..."` adds enum and bounds.
func For[T any]() (Schema, error) {
	var zero T

	raw, err := json.Marshal(reflector.Reflect(&zero))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}

	var s Schema
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, fmt.Errorf("failed to decode schema: %w", err)
	}

	delete(s, "$schema")
	delete(s, "$id")

	return s, nil
}

// MustFor is For for package-level declarations.
func MustFor[T any]() Schema {
	s, err := For[T]()
	if err != nil {
		panic(err)
	}

	return s
}

// Validate checks data against the schema.
func (s Schema) Validate(data interface{}) error {
	return validate(s, data, "$")
}

// Decode validates data and then converts it into out.
func (s Schema) Decode(data interface{}, out interface{}) error {
	if err := s.Validate(data); err != nil {
		return err
	}

	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to re-encode output: %w", err)
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode output: %w", err)
	}

	return nil
}
