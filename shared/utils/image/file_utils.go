package image

import (
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"gamestore-backend/shared/config"
)

// ParseMaxFileSize converts size strings like "10MB" or "512KB" to bytes.
func ParseMaxFileSize(value string) int64 {
	upper := strings.ToUpper(strings.TrimSpace(value))

	multiplier := int64(1)
	switch {
	case strings.HasSuffix(upper, "MB"):
		multiplier = 1024 * 1024
		upper = strings.TrimSuffix(upper, "MB")
	case strings.HasSuffix(upper, "KB"):
		multiplier = 1024
		upper = strings.TrimSuffix(upper, "KB")
	case strings.HasSuffix(upper, "B"):
		upper = strings.TrimSuffix(upper, "B")
	}

	size, err := strconv.ParseInt(strings.TrimSpace(upper), 10, 64)
	if err != nil || size <= 0 {
		return 10 * 1024 * 1024
	}
	return size * multiplier
}

// ValidateImageFile checks size and extension against configured limits
func ValidateImageFile(header *multipart.FileHeader) error {
	cfg := config.GetConfig()

	if header.Size == 0 {
		return fmt.Errorf("file is empty")
	}

	maxSize := ParseMaxFileSize(cfg.ImageServiceMaxFileSize)
	if header.Size > maxSize {
		return fmt.Errorf("file size exceeds %s limit", cfg.ImageServiceMaxFileSize)
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		return fmt.Errorf("file has no extension")
	}

	for _, allowed := range strings.Split(cfg.ImageServiceAllowedTypes, ",") {
		if ext == strings.ToLower(strings.TrimSpace(allowed)) {
			return nil
		}
	}
	return fmt.Errorf("file type %s is not allowed", ext)
}

// GenerateObjectKey builds a collision-free object key preserving the extension
func GenerateObjectKey(fileName string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	return fmt.Sprintf("games/%s%s", uuid.New().String(), ext)
}
