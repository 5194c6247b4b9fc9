package routes

import (
	"kirismor_backend/internal/handlers"
	"kirismor_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts every handler group under /api.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers) {
	api := ginRouter.Group("/api")
	{
		appHandlers.AuthHandler.RegisterRoutes(api)
		appHandlers.UserHandler.RegisterRoutes(api)
		appHandlers.ProfileHandler.RegisterRoutes(api)
		appHandlers.JobHandler.RegisterRoutes(api)
		appHandlers.FavoriteHandler.RegisterRoutes(api)
		appHandlers.FeedbackHandler.RegisterRoutes(api)
		appHandlers.RequestHandler.RegisterRoutes(api)
		appHandlers.TaskHandler.RegisterRoutes(api)
		appHandlers.NewsHandler.RegisterRoutes(api)
		appHandlers.DashboardHandler.RegisterRoutes(api)
	}

	logger.Info("HTTP routes registered under /api")
}
