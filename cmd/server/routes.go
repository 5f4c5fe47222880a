package main

import (
	"github.com/gin-gonic/gin"
	"github.com/schynno0/studio/api/rest/health"
	"github.com/schynno0/studio/api/rest/lab"
	"github.com/schynno0/studio/internal/metrics"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	router.Use(CORSMiddleware(server.config.CORSOrigins))
	router.Use(RequestLogger())

	router.GET("/health", health.Handler(server.services.Generator.Model()))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	limit, err := RateLimitMiddleware(server.config.RateLimit, server.redis)
	if err != nil {
		return err
	}

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		lab.RegisterRoutes(v1, server.services.Flows, limit)
	}

	return nil
}
