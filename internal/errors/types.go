package errors

import "github.com/schynno0/studio/internal/validation"

// represents a standardized error response
type ErrorResponse struct {
	Error   string                  `json:"error"`             // error code (e.g., "validation_error")
	Message string                  `json:"message"`           // user-friendly message
	Details string                  `json:"details,omitempty"` // optional details (sanitized in production)
	Fields  []validation.FieldError `json:"fields,omitempty"`  // per-field failures for validation errors
}

// standard error codes
const (
	CodeNotFound         = "not_found"
	CodeValidationError  = "validation_error"
	CodeServerError      = "server_error"
	CodeBadRequest       = "bad_request"
	CodeTooManyRequests  = "too_many_requests"
	CodeGenerationFailed = "generation_failed"
	CodeTimeout          = "timeout"
)

// error categories for classification
const (
	CategoryNetwork    = "network"
	CategoryValidation = "validation"
	CategoryTimeout    = "timeout"
	CategoryUpstream   = "upstream"
	CategoryUnknown    = "unknown"
)

type ErrorInfo struct {
	category  string
	sanitized string
}
