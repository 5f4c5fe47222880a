package lab

import (
	"context"
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schynno0/studio/internal/errors"
	"github.com/schynno0/studio/internal/flows"
	"github.com/schynno0/studio/internal/logger"
	"github.com/schynno0/studio/internal/validation"
)

// the subset of a flow the handler needs
type runner[In, Out any] interface {
	flows.Runner[In, Out]
	FailureMessage() string
}

// creates a handler that runs one lab tool
func Handler[In, Out any](flow runner[In, Out]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in In

		if err := c.ShouldBindJSON(&in); err != nil {
			errors.BadRequest(c, "invalid request body", err)
			return
		}

		out, err := flow.Run(c.Request.Context(), in)
		if err != nil {
			respondError(c, flow.FailureMessage(), err)
			return
		}

		c.JSON(http.StatusOK, out)
	}
}

func respondError(c *gin.Context, failureMessage string, err error) {
	if fields, ok := validation.AsErrors(err); ok {
		errors.ValidationError(c, fields)
		return
	}

	if stderrors.Is(err, context.DeadlineExceeded) {
		errors.Timeout(c, failureMessage, err)
		return
	}

	if stderrors.Is(err, flows.ErrGenerationFailed) {
		errors.GenerationFailed(c, err.Error(), stderrors.Unwrap(err))
		return
	}

	errors.InternalError(c, failureMessage, err)
}

// lists the lab tools with their field rules
func ToolsHandler(registry *flows.Registry) gin.HandlerFunc {
	tools := registry.Describe()

	return func(c *gin.Context) {
		logger.FromContext(c.Request.Context()).Debug("listing lab tools", "count", len(tools))

		c.JSON(http.StatusOK, ToolsResponse{Tools: tools})
	}
}
