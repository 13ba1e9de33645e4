package routes

import (
	"net/http"

	"unifix/handlers"
	"unifix/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires up the trigger endpoint and the health check.
func RegisterRoutes(r *gin.Engine, th *handlers.TriggerHandler, triggerToken string) {
	api := r.Group("/v1")
	{
		api.Use(middleware.TriggerAuthMiddleware(triggerToken))
		api.POST("/events", th.HandleEvent)
	}

	RegisterHealthRoute(r)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Unifix"})
	})
}
