package health

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	serviceName = "studio"
	version     = "1.0.0"
)

// returns the server health status
func Handler(model string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, Response{
			Status:  "healthy",
			Service: serviceName,
			Version: version,
			Model:   model,
		})
	}
}

// responds with pong for testing
func PingHandler(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{Message: "pong"})
}
