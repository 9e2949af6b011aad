package services

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/url"
	"strings"

	"gamestore-backend/shared/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type MinIOService struct {
	client     *minio.Client
	bucketName string
	serverURL  string
}

func NewMinIOService() (*MinIOService, error) {
	cfg := config.GetConfig()

	// Parse endpoint URL to get host
	parsedURL, err := url.Parse(cfg.MinIOServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid MinIO endpoint: %v", err)
	}

	endpoint := parsedURL.Host
	useSSL := cfg.MinIOUseSSL

	log.Printf("🔗 Connecting to MinIO: %s (SSL: %v)", endpoint, useSSL)

	// Initialize MinIO client
	minioClient, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIORootUser, cfg.MinIORootPassword, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %v", err)
	}

	service := &MinIOService{
		client:     minioClient,
		bucketName: cfg.MinIOBucketName,
		serverURL:  strings.TrimSuffix(cfg.MinIOServerURL, "/"),
	}

	// Test connection and create bucket if needed
	if err := service.initializeBucket(); err != nil {
		return nil, err
	}

	return service, nil
}

func (s *MinIOService) initializeBucket() error {
	ctx := context.Background()

	log.Printf("🪣 Checking bucket: %s", s.bucketName)

	// Check if bucket exists
	exists, err := s.client.BucketExists(ctx, s.bucketName)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %v", err)
	}

	if !exists {
		// Create bucket
		err = s.client.MakeBucket(ctx, s.bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return fmt.Errorf("failed to create bucket: %v", err)
		}
		log.Printf("✅ MinIO bucket '%s' created successfully", s.bucketName)
	} else {
		log.Printf("✅ MinIO bucket '%s' already exists", s.bucketName)
	}

	return nil
}

// Test connection
func (s *MinIOService) TestConnection() error {
	ctx := context.Background()

	buckets, err := s.client.ListBuckets(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %v", err)
	}

	log.Printf("✅ MinIO connection successful. Found %d buckets", len(buckets))
	return nil
}

// UploadImage stores an image object and returns its public URL
func (s *MinIOService) UploadImage(ctx context.Context, file io.Reader, objectKey string, fileSize int64, contentType string) (string, error) {
	log.Printf("⬆️ Uploading image to: %s/%s (size: %d bytes)", s.bucketName, objectKey, fileSize)

	_, err := s.client.PutObject(ctx, s.bucketName, objectKey, file, fileSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload image: %v", err)
	}

	log.Printf("✅ Image '%s' uploaded successfully", objectKey)
	return fmt.Sprintf("%s/%s/%s", s.serverURL, s.bucketName, objectKey), nil
}

// RemoveImage deletes an image object given its public URL
func (s *MinIOService) RemoveImage(ctx context.Context, imageURL string) error {
	objectKey, err := s.objectKeyFromURL(imageURL)
	if err != nil {
		return err
	}

	log.Printf("🗑️ Removing image: %s/%s", s.bucketName, objectKey)

	if err := s.client.RemoveObject(ctx, s.bucketName, objectKey, minio.RemoveObjectOptions{}); err != nil {
		return fmt.Errorf("failed to remove image: %v", err)
	}

	log.Printf("✅ Image '%s' removed successfully", objectKey)
	return nil
}

func (s *MinIOService) objectKeyFromURL(imageURL string) (string, error) {
	prefix := fmt.Sprintf("%s/%s/", s.serverURL, s.bucketName)
	if !strings.HasPrefix(imageURL, prefix) {
		return "", fmt.Errorf("image URL does not belong to bucket '%s'", s.bucketName)
	}

	objectKey := strings.TrimPrefix(imageURL, prefix)
	if objectKey == "" {
		return "", fmt.Errorf("image URL has no object key")
	}
	return objectKey, nil
}
