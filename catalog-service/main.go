package main

import (
	"log"
	"net/http"
	"strings"

	"gamestore-backend/catalog-service/handlers"
	"gamestore-backend/catalog-service/services"
	"gamestore-backend/shared/clients"
	"gamestore-backend/shared/config"
	"gamestore-backend/shared/database"
	"gamestore-backend/shared/middleware"
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

	// Initialize token blacklist (required by auth middleware)
	if err := cache.InitTokenBlacklist(); err != nil {
		log.Fatalf("Failed to initialize token blacklist: %v", err)
	}
	defer cache.GetTokenBlacklist().Close()

	gameHandler := handlers.NewGameHandler(
		services.NewGameService(database.GetDB()),
		clients.NewImageClient(),
	)
	userHandler := handlers.NewUserHandler(
		services.NewUserService(database.GetDB()),
	)

	router := gin.Default()

	// Game Routes (reads are public, writes require auth)
	router.GET("/api/games", gameHandler.GetGames)
	router.GET("/api/games/:id", gameHandler.GetGame)

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/games", gameHandler.CreateGame)
		protected.PATCH("/games/:id", gameHandler.UpdateGame)
		protected.DELETE("/games/:id", gameHandler.DeleteGame)
		protected.POST("/games/:id/images", gameHandler.UploadGameImage)

		// User Routes
		protected.GET("/users", userHandler.GetUsers)
		protected.GET("/users/:id", userHandler.GetUser)
		protected.PATCH("/users/:id", userHandler.UpdateUser)
		protected.DELETE("/users/:id", userHandler.DeleteUser)
	}

	// Registration stays public
	router.POST("/api/users", userHandler.CreateUser)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "catalog",
		})
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	port := strings.Split(config.GetConfig().CatalogServiceURL, ":")[2]
	log.Printf("Catalog Service starting on port %s...", port)
	router.Run(":" + port)
}
