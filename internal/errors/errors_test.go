package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/schynno0/studio/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestContext() (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/lab/grade", nil)
	return c, w
}

func TestValidationError_IncludesFields(t *testing.T) {
	c, w := newTestContext()

	ValidationError(c, validation.Errors{
		{Field: "resumeText", Message: "Resume text must be at least 100 characters."},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeValidationError, resp.Error)
	require.Len(t, resp.Fields, 1)
	assert.Equal(t, "resumeText", resp.Fields[0].Field)
}

func TestGenerationFailed_UsesToolMessage(t *testing.T) {
	c, w := newTestContext()

	GenerationFailed(c, "AI failed to grade the resume.", fmt.Errorf("no content in response"))

	assert.Equal(t, http.StatusBadGateway, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, CodeGenerationFailed, resp.Error)
	assert.Equal(t, "AI failed to grade the resume.", resp.Message)
}

func TestSanitizeError_Production(t *testing.T) {
	t.Setenv("ENVIRONMENT", "production")

	assert.Equal(t, "model provider error",
		sanitizeError(fmt.Errorf("API request failed with status 500: secret body")))
	assert.Equal(t, "request timed out",
		sanitizeError(fmt.Errorf("flow: %w", context.DeadlineExceeded)))
	assert.Equal(t, "an error occurred", sanitizeError(fmt.Errorf("boom")))
}

func TestSanitizeError_Development(t *testing.T) {
	t.Setenv("ENVIRONMENT", "development")

	assert.Equal(t, "boom", sanitizeError(fmt.Errorf("boom")))
	assert.Equal(t, "", sanitizeError(nil))
}
