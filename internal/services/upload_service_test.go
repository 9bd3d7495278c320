package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsfarrukhali/bathfitter-backend/internal/config"
)

func uploadServiceFor(serverURL string) *UploadService {
	return NewUploadService(&config.UploadConfig{
		APIKey:   "test-key",
		Endpoint: serverURL,
		Timeout:  5 * time.Second,
	})
}

func TestUpload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		file, header, err := r.FormFile("image")
		require.NoError(t, err)
		defer file.Close()
		assert.Equal(t, "wall.png", header.Filename)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"status":200,"data":{"url":"https://i.ibb.co/abc/wall.png","delete_url":"https://ibb.co/del/abc"}}`))
	}))
	defer server.Close()

	svc := uploadServiceFor(server.URL)

	result, err := svc.Upload(context.Background(), "wall.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "https://i.ibb.co/abc/wall.png", result.URL)
	assert.Equal(t, "https://ibb.co/del/abc", result.DeleteURL)
}

func TestUploadProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"success":false,"status":400,"error":{"message":"Invalid API key"}}`))
	}))
	defer server.Close()

	svc := uploadServiceFor(server.URL)

	_, err := svc.Upload(context.Background(), "wall.png", strings.NewReader("png-bytes"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid API key")
}

func TestUploadHostUnreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // force a connection error

	svc := uploadServiceFor(server.URL)

	_, err := svc.Upload(context.Background(), "wall.png", strings.NewReader("png-bytes"))
	assert.Error(t, err)
}
