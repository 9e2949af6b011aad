package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore-backend/catalog-service/services"
	"gamestore-backend/shared/clients"
	"gamestore-backend/shared/middleware"
	"gamestore-backend/shared/utils/query"
)

type GameHandler struct {
	games  *services.GameService
	images *clients.ImageClient
}

func NewGameHandler(games *services.GameService, images *clients.ImageClient) *GameHandler {
	return &GameHandler{games: games, images: images}
}

// CreateGameRequest represents request body for creating a game
type CreateGameRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       string   `json:"price" binding:"required" example:"59.90"`
	Images      []string `json:"images"`
}

// UpdateGameRequest represents request body for a partial game update.
// Omitted fields are left untouched.
type UpdateGameRequest struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *string   `json:"price" example:"49.90"`
	Images      *[]string `json:"images"`
}

// GetGames retrieves games with pagination and price filtering
// @Summary List games
// @Description Get games with pagination and optional inclusive price range filters
// @Tags games
// @Accept json
// @Produce json
// @Param page query int false "Page number (default: 1, clamped to 1)"
// @Param limit query int false "Items per page (default: 10, max: 100)"
// @Param min_price query string false "Minimum price, decimal string (inclusive)"
// @Param max_price query string false "Maximum price, decimal string (inclusive)"
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} map[string]string
// @Router /games [get]
func (h *GameHandler) GetGames(ctx *gin.Context) {
	params := query.ParseListParams(ctx)

	games, totalPages, err := h.games.List(ctx.Request.Context(), params)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"items": games,
			"pagination": gin.H{
				"page":        params.Page,
				"limit":       params.Limit,
				"total_pages": totalPages,
			},
		},
	})
}

// GetGame retrieves a single game by ID
// @Summary Get game by ID
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string "Invalid game ID format"
// @Failure 404 {object} map[string]string "Game not found"
// @Router /games/{id} [get]
func (h *GameHandler) GetGame(ctx *gin.Context) {
	game, err := h.games.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    game,
	})
}

// CreateGame creates a new game
// @Summary Create a new game
// @Tags games
// @Accept json
// @Produce json
// @Param game body CreateGameRequest true "Game information"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Created game"
// @Failure 400 {object} map[string]string "Invalid request data"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Router /games [post]
func (h *GameHandler) CreateGame(ctx *gin.Context) {
	var request CreateGameRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	game, err := h.games.Create(ctx.Request.Context(), services.CreateGameParams{
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		ImageURLs:   request.Images,
	})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Game created successfully",
		"data":    game,
	})
}

// UpdateGame partially updates an existing game
// @Summary Update a game
// @Description Apply a partial update; only supplied, changed fields are written
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Param game body UpdateGameRequest true "Changed game fields"
// @Security BearerAuth
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} map[string]string "Invalid request data or ID format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Game not found"
// @Router /games/{id} [patch]
func (h *GameHandler) UpdateGame(ctx *gin.Context) {
	var request UpdateGameRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request data",
			"message": err.Error(),
		})
		return
	}

	err := h.games.Patch(ctx.Request.Context(), ctx.Param("id"), services.UpdateGameParams{
		Name:        request.Name,
		Description: request.Description,
		Price:       request.Price,
		Images:      request.Images,
	})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Game updated successfully",
	})
}

// DeleteGame deletes a game and its owned images
// @Summary Delete a game
// @Tags games
// @Accept json
// @Produce json
// @Param id path string true "Game ID"
// @Security BearerAuth
// @Success 200 {object} map[string]string "Success message"
// @Failure 400 {object} map[string]string "Invalid game ID format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Game not found"
// @Router /games/{id} [delete]
func (h *GameHandler) DeleteGame(ctx *gin.Context) {
	if err := h.games.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Game deleted successfully",
	})
}

// UploadGameImage uploads an image through the image service and
// appends it to the game's image list
// @Summary Upload a game image
// @Tags games
// @Accept mpfd
// @Produce json
// @Param id path string true "Game ID"
// @Param file formData file true "Image file"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Uploaded image URL"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Game not found"
// @Router /games/{id}/images [post]
func (h *GameHandler) UploadGameImage(ctx *gin.Context) {
	gameID := ctx.Param("id")

	current, err := h.games.Get(ctx.Request.Context(), gameID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Could not read file"})
		return
	}
	defer file.Close()

	token := middleware.ExtractTokenFromHeader(ctx)
	url, err := h.images.Upload(file, fileHeader.Filename, token)
	if err != nil {
		ctx.JSON(http.StatusBadGateway, gin.H{"error": "Image upload failed"})
		return
	}

	urls := make([]string, 0, len(current.Images)+1)
	for _, image := range current.Images {
		urls = append(urls, image.URL)
	}
	urls = append(urls, url)

	err = h.games.Patch(ctx.Request.Context(), gameID, services.UpdateGameParams{Images: &urls})
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    gin.H{"url": url},
	})
}
