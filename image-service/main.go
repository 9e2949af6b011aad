package main

import (
	"log"
	"net/http"
	"strings"

	"gamestore-backend/image-service/handlers"
	"gamestore-backend/image-service/services"
	"gamestore-backend/shared/config"
	"gamestore-backend/shared/middleware"
	"gamestore-backend/shared/utils/cache"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func main() {

	// Load configuration
	config.LoadConfig()

	// Initialize token blacklist (required by auth middleware)
	if err := cache.InitTokenBlacklist(); err != nil {
		log.Fatalf("Failed to initialize token blacklist: %v", err)
	}
	defer cache.GetTokenBlacklist().Close()

	// Initialize object storage
	minioService, err := services.NewMinIOService()
	if err != nil {
		log.Fatalf("Failed to initialize MinIO: %v", err)
	}

	imageHandler := handlers.NewImageHandler(minioService)

	router := gin.Default()

	// Image Routes
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/images", imageHandler.UploadImage)
		protected.DELETE("/images", imageHandler.DeleteImage)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "image",
		})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := strings.Split(config.GetConfig().ImageServiceURL, ":")[2]
	log.Printf("Image Service starting on port %s...", port)
	router.Run(":" + port)
}
