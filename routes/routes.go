package routes

import (
	"investment-ideas-api/controllers"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, ideas *controllers.IdeaController) {
	// API v1 group
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"success": true,
				"message": "Investment Ideas API is running",
			})
		})

		// Status enum for form dropdowns
		v1.GET("/statuses", ideas.GetStatuses)

		// Investment ideas
		ideaRoutes := v1.Group("/ideas")
		{
			ideaRoutes.GET("", ideas.ListIdeas)
			ideaRoutes.POST("", ideas.CreateIdea)
			ideaRoutes.GET("/:id", ideas.GetIdea)
			ideaRoutes.PUT("/:id", ideas.UpdateIdea)
			ideaRoutes.DELETE("/:id", ideas.DeleteIdea)
		}
	}
}
