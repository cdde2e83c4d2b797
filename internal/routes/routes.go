// Package routes defines HTTP routes for the auth service.
package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hasan13222/house-hunter-server/docs"
	"github.com/hasan13222/house-hunter-server/internal/config"
	"github.com/hasan13222/house-hunter-server/internal/handlers"
	"github.com/hasan13222/house-hunter-server/internal/middleware"
	"github.com/hasan13222/house-hunter-server/internal/service"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Setup configures all HTTP routes for the application.
func Setup(router *gin.Engine, cfg *config.Config, authHandler *handlers.AuthHandler, healthHandler *handlers.HealthHandler, authService service.AuthService, cookies *handlers.CookieHelper) {
	router.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	router.Use(middleware.CSRFOriginCheck(cfg.AllowedOrigins))

	// Liveness and health
	router.GET("/", healthHandler.Live)
	router.GET("/health", healthHandler.Check)
	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes
	router.POST("/signup", authHandler.Signup)
	router.POST("/login", authHandler.Login)
	router.POST("/logout", authHandler.Logout)
	router.GET("/isLogin", middleware.RequireSession(authService, cookies), authHandler.IsLogin)

	// Swagger documentation (only if SWAGGER_HOST is configured)
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
