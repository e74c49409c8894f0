package http

import (
	"github.com/gin-gonic/gin"

	"taskman/internal/adapter/http/handlers"
	"taskman/internal/adapter/http/middleware"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler) {
	r.GET("/", handlers.ServeIndex)
	r.GET("/metrics", middleware.MetricsHandler())

	api := r.Group("/", middleware.LanguageMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.POST("/tasks/", taskHandler.CreateTask)
		api.GET("/tasks/", taskHandler.ListTasks)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PATCH("/tasks/:id", taskHandler.UpdateTask)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
	}
}
