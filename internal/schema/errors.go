package schema

import "fmt"

// a schema validation failure at a JSON path (e.g. "$.suggestions[0].title")
type ValidationError struct {
	Path    string
	Keyword string
	Message string
}

func NewValidationError(path, keyword, message string) *ValidationError {
	return &ValidationError{
		Path:    path,
		Keyword: keyword,
		Message: message,
	}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed at %s (%s): %s", e.Path, e.Keyword, e.Message)
}

// matches on path and keyword so callers can use errors.Is
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	if !ok {
		return false
	}

	return e.Path == t.Path && e.Keyword == t.Keyword
}
