package config

import (
	"fmt"
	"os"
	"time"
)

const defaultUploadEndpoint = "https://api.imgbb.com/1/upload"

// UploadConfig holds the image-hosting provider settings.
type UploadConfig struct {
	APIKey   string
	Endpoint string
	Timeout  time.Duration
}

func LoadUploadConfig() (*UploadConfig, error) {
	apiKey := os.Getenv("IMGBB_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("IMGBB_API_KEY environment variable is required")
	}

	endpoint := os.Getenv("IMGBB_ENDPOINT")
	if endpoint == "" {
		endpoint = defaultUploadEndpoint
	}

	return &UploadConfig{
		APIKey:   apiKey,
		Endpoint: endpoint,
		Timeout:  30 * time.Second,
	}, nil
}
