package errors

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schynno0/studio/internal/logger"
	"github.com/schynno0/studio/internal/validation"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.GenerationFailed(), etc. for request-ending errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For flows, providers and other internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler) decide how to log and respond

// returns a 404 not found error
func NotFound(c *gin.Context, resource string) {
	message := "resource not found"

	if resource != "" {
		message = resource + " not found"
	}

	c.JSON(http.StatusNotFound, ErrorResponse{
		Error:   CodeNotFound,
		Message: message,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error:   CodeBadRequest,
		Message: message,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 with one entry per failed field
func ValidationError(c *gin.Context, fields validation.Errors) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: "validation failed",
		Fields:  fields,
	})
}

// returns a 502 when the model produced nothing usable.
// message is the user-facing failure text of the tool.
func GenerationFailed(c *gin.Context, message string, err error) {
	logger.FromContext(c.Request.Context()).Warn("generation failed",
		"path", c.Request.URL.Path,
		"error", err,
	)

	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error:   CodeGenerationFailed,
		Message: message,
		Details: sanitizeError(err),
	})
}

// returns a 504 when the flow ran out of time
func Timeout(c *gin.Context, message string, err error) {
	if message == "" {
		message = "request timed out"
	}

	logger.FromContext(c.Request.Context()).Warn("flow timed out",
		"path", c.Request.URL.Path,
		"error", err,
	)

	c.JSON(http.StatusGatewayTimeout, ErrorResponse{
		Error:   CodeTimeout,
		Message: message,
		Details: sanitizeError(err),
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	logger.FromContext(c.Request.Context()).Error(message,
		"error", err,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}
