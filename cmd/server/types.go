package main

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/schynno0/studio/internal/config"
	"github.com/schynno0/studio/internal/flows"
	"github.com/schynno0/studio/internal/llm"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	services *Services
	redis    *redis.Client // nil when REDIS_URL is unset
	router   *gin.Engine
}

// holds the model client and the lab flows built on it
type Services struct {
	Generator llm.TextGenerator
	Flows     *flows.Registry
}
