// Package main is the entry point for the auth service.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	_ "github.com/hasan13222/house-hunter-server/docs"
	"github.com/hasan13222/house-hunter-server/internal/config"
	"github.com/hasan13222/house-hunter-server/internal/handlers"
	"github.com/hasan13222/house-hunter-server/internal/metrics"
	"github.com/hasan13222/house-hunter-server/internal/models"
	"github.com/hasan13222/house-hunter-server/internal/repository"
	"github.com/hasan13222/house-hunter-server/internal/routes"
	"github.com/hasan13222/house-hunter-server/internal/service"
	"github.com/hasan13222/house-hunter-server/pkg/database"
	redispkg "github.com/hasan13222/house-hunter-server/pkg/redis"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	goredis "github.com/redis/go-redis/v9"
)

// @title House Hunter Auth Service API
// @version 1.0
// @description Authentication backend for the house hunter rental-listing application
// @host localhost:5000
// @BasePath /
func main() {
	// Load .env if present; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	// Initialize database
	db, err := database.Connect(database.PostgresConfig{
		Host:     cfg.DBHost,
		Port:     cfg.DBPort,
		User:     cfg.DBUser,
		Password: cfg.DBPassword,
		DBName:   cfg.DBName,
		SSLMode:  cfg.DBSSLMode,
		TimeZone: "UTC",
	})
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.AutoMigrate(&models.User{}); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Initialize Redis (optional; enables logout revocation)
	var redisClient *goredis.Client
	if cfg.RedisHost != "" {
		redisClient, err = redispkg.NewClient(cfg)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
	}

	// Initialize repository
	userRepo := repository.NewUserRepository(db)

	// Initialize services
	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if jwtService == nil {
		slog.Error("JWT_SECRET must be at least 32 bytes")
		os.Exit(1)
	}
	authService := service.NewAuthService(userRepo, jwtService, redisClient, cfg.BcryptCost)

	// Initialize handlers
	authMetrics := metrics.New(prometheus.DefaultRegisterer)
	cookies := handlers.NewCookieHelper(cfg.Cookie)
	authHandler := handlers.NewAuthHandler(authService, cookies, authMetrics, cfg.JWTExpiry)
	healthHandler := handlers.NewHealthHandler(db, redisClient)

	// Setup router
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Setup routes
	routes.Setup(router, cfg, authHandler, healthHandler, authService, cookies)

	// Start server
	slog.Info("starting auth service", "port", cfg.Port)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		slog.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}
