package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	"gamestore-backend/api-gateway/middleware"
	"gamestore-backend/api-gateway/routes"
	"gamestore-backend/shared/config"

	_ "gamestore-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title GameStore API
// @version 1.0
// @description API documentation for the GameStore microservices platform
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@gamestore.com

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8000
// @BasePath /api
// @schemes http https

// @tag.name auth
// @tag.description Authentication operations

// @tag.name games
// @tag.description Game catalog operations

// @tag.name users
// @tag.description User management operations

// @tag.name images
// @tag.description Image storage operations

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token.

func main() {
	// Load configuration
	config.LoadConfig()

	// Initialize global rate limiter
	rateLimiter := middleware.NewRateLimiter(5 * time.Minute) // Cleanup every 5 minutes

	router := gin.Default()

	// Add CORS middleware
	router.Use(cors.Default())

	// Global rate limiter middleware
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "API Gateway is running", "Port": "8000"})
	})

	// Auth routes
	router.Any("/api/auth/*path", routes.ProxyToService("auth"))

	// Game routes
	router.GET("/api/games", routes.ProxyToService("catalog"))
	router.POST("/api/games", routes.ProxyToService("catalog"))
	router.GET("/api/games/:id", routes.ProxyToService("catalog"))
	router.PATCH("/api/games/:id", routes.ProxyToService("catalog"))
	router.DELETE("/api/games/:id", routes.ProxyToService("catalog"))
	router.POST("/api/games/:id/images", routes.ProxyToService("catalog"))

	// User routes
	router.GET("/api/users", routes.ProxyToService("catalog"))
	router.POST("/api/users", routes.ProxyToService("catalog"))
	router.GET("/api/users/:id", routes.ProxyToService("catalog"))
	router.PATCH("/api/users/:id", routes.ProxyToService("catalog"))
	router.DELETE("/api/users/:id", routes.ProxyToService("catalog"))

	// Image routes
	router.POST("/api/images", routes.ProxyToService("image"))
	router.DELETE("/api/images", routes.ProxyToService("image"))

	// Swagger documentation UI (development only)
	router.GET("/swagger/*any", func(c *gin.Context) {
		if gin.Mode() == gin.DebugMode {
			ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
		} else {
			c.JSON(http.StatusNotFound, gin.H{
				"message": "Swagger documentation not available in production",
			})
		}
	})

	// Server Start
	port := strings.Split(config.GetConfig().APIGatewayURL, ":")[2]
	log.Printf("API Gateway is running on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
