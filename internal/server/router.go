package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/skillpath/skillpath-backend/internal/handlers"
	"github.com/skillpath/skillpath-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler    *handlers.AuthHandler
	UserHandler    *handlers.UserHandler
	InsightHandler *handlers.InsightHandler
	RoadmapHandler *handlers.RoadmapHandler
	WriterHandler  *handlers.WriterHandler
	AuthMiddleware *middleware.AuthMiddleware
	AILimiter      *middleware.AILimiter
	AllowOrigins   []string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// Public
	router.GET("/healthcheck", handlers.HealthCheck)
	router.POST("/users/register", cfg.AuthHandler.Register)
	router.POST("/users/login", cfg.AuthHandler.Login)

	// Protected
	protected := router.Group("/")
	protected.Use(cfg.AuthMiddleware.RequireAuth())

	protected.GET("/users/me", cfg.UserHandler.GetMe)
	protected.PUT("/users/profile", cfg.UserHandler.UpdateProfile)

	insights := protected.Group("/api/career-insights")
	insights.GET("/my-insight", cfg.InsightHandler.GetMyInsight)
	insights.POST("/generate", cfg.AILimiter.Limit(), cfg.InsightHandler.GenerateInsight)

	roadmap := protected.Group("/api/roadmap")
	roadmap.POST("/generate", cfg.AILimiter.Limit(), cfg.RoadmapHandler.GenerateRoadmap)
	roadmap.GET("/my-roadmap", cfg.RoadmapHandler.GetMyRoadmap)
	roadmap.POST("/toggle-complete", cfg.RoadmapHandler.ToggleComplete)
	roadmap.GET("/progress", cfg.RoadmapHandler.GetProgress)
	roadmap.GET("/progress-summary", cfg.RoadmapHandler.GetProgressSummary)

	writer := protected.Group("/ai")
	writer.Use(cfg.AILimiter.Limit())
	writer.POST("/generate-resume-content", cfg.WriterHandler.GenerateResumeContent)
	writer.POST("/generate-resume-bullets", cfg.WriterHandler.GenerateResumeBullets)
	writer.POST("/generate-cover-letter", cfg.WriterHandler.GenerateCoverLetter)

	return router
}
