package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"gamestore-backend/shared/config"
)

// ImageClient handles communication with the image service
type ImageClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewImageClient creates a new image client
func NewImageClient() *ImageClient {
	cfg := config.GetConfig()
	return &ImageClient{
		baseURL: cfg.ImageServiceURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// UploadResponse represents the image service upload response
type UploadResponse struct {
	URL string `json:"url"`
}

// Upload sends a file to the image service and returns the public URL
// of the stored object. The caller's bearer token is forwarded.
func (c *ImageClient) Upload(file io.Reader, fileName, authToken string) (string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return "", fmt.Errorf("failed to copy file data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/api/images", body)
	if err != nil {
		return "", fmt.Errorf("failed to create upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("image service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("image service returned status %d", resp.StatusCode)
	}

	var uploadResp UploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&uploadResp); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}

	return uploadResp.URL, nil
}

// Delete removes a previously uploaded object by its public URL.
func (c *ImageClient) Delete(imageURL, authToken string) error {
	req, err := http.NewRequest("DELETE",
		c.baseURL+"/api/images?url="+url.QueryEscape(imageURL), nil)
	if err != nil {
		return fmt.Errorf("failed to create delete request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("image service unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("image service returned status %d", resp.StatusCode)
	}

	return nil
}
