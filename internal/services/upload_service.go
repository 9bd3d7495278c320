package services

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/itsfarrukhali/bathfitter-backend/internal/config"
)

// UploadService forwards admin image uploads to the hosting provider and
// hands back the delivery URL the catalog stores.
type UploadService struct {
	cfg    *config.UploadConfig
	client *http.Client
}

func NewUploadService(cfg *config.UploadConfig) *UploadService {
	return &UploadService{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

type UploadResult struct {
	URL       string `json:"url"`
	DeleteURL string `json:"delete_url"`
}

type providerResponse struct {
	Success bool `json:"success"`
	Status  int  `json:"status"`
	Data    struct {
		URL       string `json:"url"`
		DeleteURL string `json:"delete_url"`
	} `json:"data"`
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload streams the file to the provider as multipart form data.
func (s *UploadService) Upload(ctx context.Context, filename string, file io.Reader) (*UploadResult, error) {
	body, contentType, err := buildMultipartBody(filename, file)
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s?key=%s", s.cfg.Endpoint, url.QueryEscape(s.cfg.APIKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build upload request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image host unreachable: %w", err)
	}
	defer resp.Body.Close()

	var parsed providerResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to decode image host response: %w", err)
	}

	if resp.StatusCode != http.StatusOK || !parsed.Success {
		msg := parsed.Error.Message
		if msg == "" {
			msg = fmt.Sprintf("status %d", resp.StatusCode)
		}
		return nil, fmt.Errorf("image host rejected upload: %s", msg)
	}

	return &UploadResult{
		URL:       parsed.Data.URL,
		DeleteURL: parsed.Data.DeleteURL,
	}, nil
}

func buildMultipartBody(filename string, file io.Reader) (io.Reader, string, error) {
	pr, pw := io.Pipe()
	writer := multipart.NewWriter(pw)

	go func() {
		part, err := writer.CreateFormFile("image", filename)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(part, file); err != nil {
			pw.CloseWithError(err)
			return
		}
		pw.CloseWithError(writer.Close())
	}()

	return pr, writer.FormDataContentType(), nil
}
