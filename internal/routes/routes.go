package routes

import (
	"net/http"

	"careero_backend/internal/handlers"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes wires every HTTP route onto the engine.
func RegisterRoutes(ginRouter *gin.Engine, appHandlers *handlers.AppHandlers, authMW gin.HandlerFunc) {
	api := ginRouter.Group("/api")
	{
		api.GET("", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"message": "Careero API is running"})
		})

		appHandlers.AuthHandler.RegisterRoutes(api, authMW)
		appHandlers.ApplicationHandler.RegisterRoutes(api, authMW)
		appHandlers.ProfileHandler.RegisterRoutes(api, authMW)
		appHandlers.GenerateHandler.RegisterRoutes(api, authMW)
	}

	ginRouter.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Anything not matched above is a uniform 404.
	ginRouter.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})
}
