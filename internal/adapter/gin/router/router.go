package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"notes-service/internal/adapter/gin/handler"
	"notes-service/internal/adapter/gin/middleware"
	"notes-service/internal/usecase/auth"
	"notes-service/pkg/token"
)

// SetupRouter configures and returns a Gin router with all routes and
// middleware. The access gate (RequireAuth) guards the profile lookup and
// every note operation; signup and login are the only open endpoints.
func SetupRouter(
	authHandler *handler.AuthHandler,
	noteHandler *handler.NoteHandler,
	tokens *token.Manager,
	users auth.Repository,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(middleware.Logger(log))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "notes-service",
		})
	})

	requireAuth := middleware.RequireAuth(tokens, users, log)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", authHandler.Signup)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/profile", requireAuth, authHandler.Profile)
		}

		notes := api.Group("/notes", requireAuth)
		{
			notes.GET("", noteHandler.List)
			notes.POST("", noteHandler.Create)
			notes.GET("/:id", noteHandler.Get)
			notes.PUT("/:id", noteHandler.Update)
			notes.DELETE("/:id", noteHandler.Delete)
		}
	}

	// Unmatched routes return a JSON 404 rather than gin's default empty body
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "not_found",
			"message": "route not found",
		})
	})

	return router
}
