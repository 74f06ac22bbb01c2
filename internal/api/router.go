package api

import (
	"net/http"
	"time"

	"github.com/blogfolio-api/internal/config"
	"github.com/blogfolio-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter creates and configures the Gin router
func NewRouter(services *service.Services, cfg *config.Config, log zerolog.Logger) *gin.Engine {
	// Set Gin mode
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Middleware
	router.Use(recoveryMiddleware(log))
	router.Use(loggingMiddleware(log))
	router.Use(metricsMiddleware())
	router.Use(corsMiddleware())

	auth := authRequired(cfg.Auth.AccessSecret, log)
	adminOnly := requireRole("admin")

	// Handlers
	authHandler := NewAuthHandler(services, log)
	articleHandler := NewArticleHandler(services, log)
	legacyHandler := NewLegacyHandler(services, log)
	portfolioHandler := NewPortfolioHandler(services, log)
	commentHandler := NewCommentHandler(services, log)
	messageHandler := NewMessageHandler(services, log)
	fileHandler := NewFileHandler(services, cfg, log)

	// Health check and metrics
	router.GET("/health", healthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth
	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.GET("/users", auth, adminOnly, authHandler.ListUsers)

	// Legacy posts keep their historical flat URLs
	router.GET("/posts", legacyHandler.List)
	router.GET("/post/:id", legacyHandler.Get)
	router.POST("/create", auth, legacyHandler.Create)
	router.PUT("/update/:id", auth, legacyHandler.Update)
	router.DELETE("/delete/:id", auth, legacyHandler.Delete)

	// Files
	router.POST("/file/upload", auth, fileHandler.Upload)
	router.GET("/file/:filename", fileHandler.Download)

	// Comments
	router.POST("/comment/new", auth, commentHandler.Create)
	router.GET("/comments/:id", auth, commentHandler.ListByPost)
	router.DELETE("/comment/delete/:id", auth, commentHandler.Delete)

	// Portfolios
	portfolio := router.Group("/portfolio")
	{
		portfolio.GET("/all", portfolioHandler.ListConsolidated)
		portfolio.GET("/user/:userId", portfolioHandler.ListByUser)
		portfolio.POST("/add", auth, portfolioHandler.Create)
		portfolio.PUT("/update/:id", auth, portfolioHandler.Update)
		portfolio.DELETE("/delete/:id", auth, portfolioHandler.Delete)
	}

	// Messages
	router.POST("/message/new", messageHandler.Create)
	router.GET("/messages/:id", auth, messageHandler.ListByReceiver)

	// Unified blog API
	blog := router.Group("/api/blog")
	{
		blog.GET("/all", articleHandler.List)
		blog.GET("/stats/overview", articleHandler.Stats)
		blog.GET("/user/:userId", articleHandler.ListByUser)
		blog.GET("/:id", articleHandler.Get)
		blog.POST("/create", auth, articleHandler.Create)
		blog.PUT("/update/:id", auth, articleHandler.Update)
		blog.DELETE("/delete/:id", auth, articleHandler.Delete)
		blog.POST("/like/:id", auth, articleHandler.ToggleLike)
	}

	return router
}

// healthCheck returns the health status
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"service":   "blogfolio-api",
	})
}

// recoveryMiddleware handles panics
func recoveryMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				log.Error().Interface("error", err).Msg("Panic recovered")
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// loggingMiddleware logs requests
func loggingMiddleware(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		duration := time.Since(start)
		statusCode := c.Writer.Status()

		event := log.Info()
		if statusCode >= 400 {
			event = log.Warn()
		}
		if statusCode >= 500 {
			event = log.Error()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", statusCode).
			Dur("duration", duration).
			Str("client_ip", c.ClientIP()).
			Msg("Request completed")
	}
}

// corsMiddleware handles CORS
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
