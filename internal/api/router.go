package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gymtrack-dev/gymtrack/internal/api/handlers"
	"github.com/gymtrack-dev/gymtrack/internal/auth"
	"github.com/gymtrack-dev/gymtrack/internal/config"
	"github.com/gymtrack-dev/gymtrack/internal/service"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// NewRouter creates and configures the Gin router. The authenticator is
// chosen at startup; oidcAuth is nil in local-dev mode and the login
// endpoints are only registered when it is present.
func NewRouter(cfg *config.Config, db *gorm.DB, authenticator auth.Authenticator, oidcAuth *auth.OIDCAuthenticator) *gin.Engine {
	if cfg.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware())
	router.Use(corsMiddleware())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", handlers.HealthCheck)
		if oidcAuth != nil {
			public.GET("/auth/login", handlers.OIDCLogin(oidcAuth))
			public.GET("/auth/callback", handlers.OIDCCallback(oidcAuth))
		}
	}

	// Initialize handlers
	workoutHandler := handlers.NewWorkoutHandler(service.NewWorkoutService(db))
	templateHandler := handlers.NewTemplateHandler(service.NewTemplateService(db))
	exerciseHandler := handlers.NewExerciseHandler(service.NewSearchService(db))

	// Protected routes (require authentication)
	protected := router.Group("/api")
	protected.Use(authenticator.Middleware())
	{
		protected.GET("/auth/me", handlers.Me)

		// Workout endpoints
		protected.GET("/workouts", workoutHandler.ListWorkouts)
		protected.POST("/workouts", workoutHandler.CreateWorkout)
		protected.GET("/workouts/:id", workoutHandler.GetWorkout)
		protected.PUT("/workouts/:id", workoutHandler.UpdateWorkout)
		protected.DELETE("/workouts/:id", workoutHandler.DeleteWorkout)

		// Template endpoints
		protected.GET("/templates", templateHandler.ListTemplates)
		protected.POST("/templates", templateHandler.CreateTemplate)
		protected.GET("/templates/:id", templateHandler.GetTemplate)
		protected.PUT("/templates/:id", templateHandler.UpdateTemplate)
		protected.DELETE("/templates/:id", templateHandler.DeleteTemplate)

		// Exercise search
		protected.GET("/exercises/search", exerciseHandler.SearchExercises)
	}

	// Swagger documentation
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	slog.Info("API router initialized", "mode", cfg.Server.Mode)
	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		slog.Info("HTTP request",
			"method", method,
			"path", path,
			"status", status,
			"latency", latency.String(),
			"ip", c.ClientIP(),
		)
	}
}

// corsMiddleware adds CORS headers
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
