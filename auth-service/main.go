package main

import (
	"log"
	"net/http"
	"strings"

	"gamestore-backend/auth-service/handlers"
	"gamestore-backend/auth-service/services"
	"gamestore-backend/shared/config"
	"gamestore-backend/shared/database"
	"gamestore-backend/shared/utils/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {

	// Load configuration
	config.LoadConfig()

	// Initialize database
	if err := database.InitDatabase(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer database.CloseDatabase()

	// Initialize token blacklist
	if err := cache.InitTokenBlacklist(); err != nil {
		log.Fatalf("Failed to initialize token blacklist: %v", err)
	}
	defer cache.GetTokenBlacklist().Close()

	authHandler := handlers.NewAuthHandler(
		services.NewTokenService(database.GetDB(), cache.GetTokenBlacklist()),
	)

	router := gin.Default()

	// Auth Routes
	router.POST("/api/auth/login", authHandler.Login)
	router.POST("/api/auth/logout", authHandler.Logout)
	router.POST("/api/auth/validate", authHandler.Validate)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "auth",
		})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := strings.Split(config.GetConfig().AuthServiceURL, ":")[2]
	log.Printf("Auth Service starting on port %s...", port)
	router.Run(":" + port)
}
