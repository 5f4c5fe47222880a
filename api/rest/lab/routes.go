package lab

import (
	"github.com/gin-gonic/gin"
	"github.com/schynno0/studio/internal/flows"
)

// registers the AI lab routes; limit guards the tool endpoints only
func RegisterRoutes(router *gin.RouterGroup, registry *flows.Registry, limit gin.HandlerFunc) {
	group := router.Group("/lab")

	group.GET("/tools", ToolsHandler(registry))

	tools := group.Group("")
	if limit != nil {
		tools.Use(limit)
	}

	tools.POST("/"+flows.ToolExplain, Handler[flows.ExplainInput, flows.ExplainOutput](registry.Explain))
	tools.POST("/"+flows.ToolGenerate, Handler[flows.GenerateInput, flows.GenerateOutput](registry.Generate))
	tools.POST("/"+flows.ToolSummarize, Handler[flows.SummarizeInput, flows.SummarizeOutput](registry.Summarize))
	tools.POST("/"+flows.ToolGrade, Handler[flows.GradeInput, flows.GradeOutput](registry.Grade))
	tools.POST("/"+flows.ToolSuggest, Handler[flows.SuggestInput, flows.SuggestOutput](registry.Suggest))
}
