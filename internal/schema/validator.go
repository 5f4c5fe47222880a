package schema

import (
	"encoding/json"
	"fmt"
)

// supports: type, properties, required, enum, items, minimum, maximum
func validate(schema map[string]interface{}, data interface{}, path string) error {
	schemaType, ok := schema["type"].(string)
	if !ok {
		return nil
	}

	if err := validateType(schemaType, data, path); err != nil {
		return err
	}

	switch schemaType {
	case "object":
		return validateObject(schema, data.(map[string]interface{}), path)
	case "array":
		return validateArray(schema, data.([]interface{}), path)
	case "string":
		return validateEnum(schema, data.(string), path)
	case "number", "integer":
		return validateBounds(schema, toFloat(data), path)
	}

	return nil
}

func validateType(schemaType string, data interface{}, path string) error {
	switch schemaType {
	case "object":
		if _, ok := data.(map[string]interface{}); !ok {
			return NewValidationError(path, "type", fmt.Sprintf("expected object, got %T", data))
		}
	case "array":
		if _, ok := data.([]interface{}); !ok {
			return NewValidationError(path, "type", fmt.Sprintf("expected array, got %T", data))
		}
	case "string":
		if _, ok := data.(string); !ok {
			return NewValidationError(path, "type", fmt.Sprintf("expected string, got %T", data))
		}
	case "number":
		switch data.(type) {
		case float64, int, int64, float32:
		default:
			return NewValidationError(path, "type", fmt.Sprintf("expected number, got %T", data))
		}
	case "integer":
		switch v := data.(type) {
		case float64:
			// JSON numbers decode as float64
			if v != float64(int64(v)) {
				return NewValidationError(path, "type", fmt.Sprintf("expected integer, got %v", v))
			}
		case int, int64:
		default:
			return NewValidationError(path, "type", fmt.Sprintf("expected integer, got %T", data))
		}
	case "boolean":
		if _, ok := data.(bool); !ok {
			return NewValidationError(path, "type", fmt.Sprintf("expected boolean, got %T", data))
		}
	default:
		return fmt.Errorf("unsupported schema type: %s", schemaType)
	}

	return nil
}

func validateObject(schema map[string]interface{}, obj map[string]interface{}, path string) error {
	if required, ok := schema["required"].([]interface{}); ok {
		for _, reqField := range required {
			name, ok := reqField.(string)
			if !ok {
				continue
			}

			if _, exists := obj[name]; !exists {
				return NewValidationError(path, "required", fmt.Sprintf("missing required field: %s", name))
			}
		}
	}

	// extra fields not in the schema are ignored
	if properties, ok := schema["properties"].(map[string]interface{}); ok {
		for name, value := range obj {
			propSchema, ok := properties[name].(map[string]interface{})
			if !ok {
				continue
			}

			if err := validate(propSchema, value, path+"."+name); err != nil {
				return err
			}
		}
	}

	return nil
}

func validateArray(schema map[string]interface{}, arr []interface{}, path string) error {
	items, ok := schema["items"].(map[string]interface{})
	if !ok {
		return nil
	}

	for i, item := range arr {
		if err := validate(items, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
			return err
		}
	}

	return nil
}

func validateEnum(schema map[string]interface{}, str string, path string) error {
	enum, ok := schema["enum"].([]interface{})
	if !ok {
		return nil
	}

	for _, allowed := range enum {
		if s, ok := allowed.(string); ok && s == str {
			return nil
		}
	}

	enumJSON, _ := json.Marshal(enum)

	return NewValidationError(path, "enum", fmt.Sprintf("value %q not in allowed values: %s", str, enumJSON))
}

func validateBounds(schema map[string]interface{}, n float64, path string) error {
	if min, ok := schema["minimum"].(float64); ok && n < min {
		return NewValidationError(path, "minimum", fmt.Sprintf("%v is less than %v", n, min))
	}

	if max, ok := schema["maximum"].(float64); ok && n > max {
		return NewValidationError(path, "maximum", fmt.Sprintf("%v is greater than %v", n, max))
	}

	return nil
}

func toFloat(data interface{}) float64 {
	switch v := data.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}
