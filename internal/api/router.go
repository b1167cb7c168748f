package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sportshub/storefront/internal/api/handlers"
	"github.com/sportshub/storefront/internal/api/middleware"
	"github.com/sportshub/storefront/internal/config"
	"github.com/sportshub/storefront/internal/repository"
	"github.com/sportshub/storefront/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, auth *service.AuthService, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{"status": "ok"})
		})

		api.GET("/products", handlers.HandleListProducts(repos, logger))
		api.GET("/products/:id", handlers.HandleGetProduct(repos, logger))
		api.GET("/categories", handlers.HandleListCategories(repos, logger))
		api.GET("/categories/:id", handlers.HandleGetCategory(repos, logger))

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", handlers.HandleRegister(auth, logger))
			authRoutes.POST("/login", handlers.HandleLogin(auth, logger))

			profileRoutes := authRoutes.Group("")
			profileRoutes.Use(middleware.AuthMiddleware(auth, logger))
			{
				profileRoutes.GET("/profile", handlers.HandleProfile())
			}
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
