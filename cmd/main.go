package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/skillpath/skillpath-backend/internal/clients/redis"
	"github.com/skillpath/skillpath-backend/internal/db"
	"github.com/skillpath/skillpath-backend/internal/handlers"
	"github.com/skillpath/skillpath-backend/internal/logger"
	"github.com/skillpath/skillpath-backend/internal/middleware"
	"github.com/skillpath/skillpath-backend/internal/repos"
	"github.com/skillpath/skillpath-backend/internal/server"
	"github.com/skillpath/skillpath-backend/internal/services"
	"github.com/skillpath/skillpath-backend/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Env
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 86400, log)
	aiLimitMax := utils.GetEnvAsInt("AI_LIMIT_MAX", 100, log)
	aiLimitWindowMin := utils.GetEnvAsInt("AI_LIMIT_WINDOW_MINUTES", 15, log)
	allowOrigins := strings.Split(utils.GetEnv("CORS_ALLOW_ORIGINS", "http://localhost:3000,http://localhost:5173", log), ",")
	port := utils.GetEnv("PORT", "5000", log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err := postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Redis (optional, backs the AI rate limiter)
	redisClient, err := redis.NewClient(log)
	if err != nil {
		log.Warn("Redis init failed, AI rate limiting disabled", "error", err)
	}

	// Repos
	log.Info("Setting up repos...")
	userRepo := repos.NewUserRepo(thePG, log)
	insightRepo := repos.NewCareerInsightRepo(thePG, log)
	roadmapRepo := repos.NewRoadmapRepo(thePG, log)
	progressRepo := repos.NewUserProgressRepo(thePG, log)
	aiCallLogRepo := repos.NewAICallLogRepo(thePG, log)

	// Services
	log.Info("Setting up services...")
	aiClient, err := services.NewGeminiClient(log, aiCallLogRepo)
	if err != nil {
		log.Error("Could not init Gemini client", "error", err)
		os.Exit(1)
	}
	authService := services.NewAuthService(thePG, log, userRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second)
	userService := services.NewUserService(thePG, log, userRepo)
	insightService := services.NewInsightService(thePG, log, insightRepo, aiClient)
	roadmapService := services.NewRoadmapService(thePG, log, roadmapRepo, progressRepo, aiClient)
	writerService := services.NewWriterService(log, aiClient)

	// Handlers & middleware
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userService)
	insightHandler := handlers.NewInsightHandler(insightService)
	roadmapHandler := handlers.NewRoadmapHandler(roadmapService)
	writerHandler := handlers.NewWriterHandler(writerService)
	authMiddleware := middleware.NewAuthMiddleware(log, authService)
	aiLimiter := middleware.NewAILimiter(log, redisClient, aiLimitMax, time.Duration(aiLimitWindowMin)*time.Minute)

	router := server.NewRouter(server.RouterConfig{
		AuthHandler:    authHandler,
		UserHandler:    userHandler,
		InsightHandler: insightHandler,
		RoadmapHandler: roadmapHandler,
		WriterHandler:  writerHandler,
		AuthMiddleware: authMiddleware,
		AILimiter:      aiLimiter,
		AllowOrigins:   allowOrigins,
	})

	log.Info("Starting server", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
