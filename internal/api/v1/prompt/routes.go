package prompt

import "github.com/gin-gonic/gin"

func RegisterRoutes(router *gin.RouterGroup, h *Handler) {
	promptGroup := router.Group("/prompts")
	{
		promptGroup.POST("", h.CreatePrompt)
		promptGroup.GET("", h.ListPrompts)
		promptGroup.GET("/:id", h.GetPrompt)
	}
}
