package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamestore-backend/image-service/services"
	imageUtils "gamestore-backend/shared/utils/image"
)

type ImageHandler struct {
	storage *services.MinIOService
}

func NewImageHandler(storage *services.MinIOService) *ImageHandler {
	return &ImageHandler{storage: storage}
}

// UploadImage uploads an image to object storage
// @Summary Upload an image
// @Description Store an image file and return its public URL
// @Tags images
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file to upload"
// @Security BearerAuth
// @Success 201 {object} map[string]interface{} "Image uploaded successfully"
// @Failure 400 {object} map[string]string "Invalid file"
// @Failure 500 {object} map[string]string "Storage error"
// @Router /images [post]
func (h *ImageHandler) UploadImage(ctx *gin.Context) {
	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "File is required"})
		return
	}
	defer file.Close()

	if err := imageUtils.ValidateImageFile(header); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	objectKey := imageUtils.GenerateObjectKey(header.Filename)
	contentType := header.Header.Get("Content-Type")

	url, err := h.storage.UploadImage(ctx.Request.Context(), file, objectKey, header.Size, contentType)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload image"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Image uploaded successfully",
		"url":     url,
	})
}

// DeleteImage removes an image from object storage
// @Summary Delete an image
// @Description Remove a stored image by its public URL
// @Tags images
// @Accept json
// @Produce json
// @Param url query string true "Public URL of the image"
// @Security BearerAuth
// @Success 200 {object} map[string]string "Image deleted successfully"
// @Failure 400 {object} map[string]string "Missing or invalid url"
// @Failure 500 {object} map[string]string "Storage error"
// @Router /images [delete]
func (h *ImageHandler) DeleteImage(ctx *gin.Context) {
	imageURL := ctx.Query("url")
	if imageURL == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "url is required"})
		return
	}

	if err := h.storage.RemoveImage(ctx.Request.Context(), imageURL); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete image"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Image deleted successfully",
	})
}
