package flows

import "errors"

// matched by errors.Is for any GenerationError
var ErrGenerationFailed = errors.New("generation failed")

// the model produced no usable output. Message is the tool's generic
// description; Cause is kept for logs and is not shown to users.
type GenerationError struct {
	Flow    string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	return e.Message
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}
