// Package client is an http client against the slidecast api, used by the
// pool sync and the command line tool.
package client

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/LegalDragon/slidecast/api/models"
	"github.com/LegalDragon/slidecast/store"
)

type MediaClient struct {
	baseURL string
	client  *http.Client
}

func NewMediaClient(baseURL string) *MediaClient {
	return &MediaClient{
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

func (mc *MediaClient) do(req *http.Request) ([]byte, error) {
	resp, err := mc.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp models.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return nil, fmt.Errorf("server error: %s", errResp.Error)
		}
		return nil, fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// RegisterSharedMedia registers an existing asset file in the shared pool
func (mc *MediaClient) RegisterSharedMedia(name string) error {
	reqBody := models.RegisterMediaRequest{Name: name}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, mc.baseURL+"/media/register", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	body, err := mc.do(req)
	if err != nil {
		return err
	}

	var registerResp models.RegisterMediaResponse
	if err := json.Unmarshal(body, &registerResp); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}

	slog.Info("media registered", "name", name, "kind", registerResp.Kind)
	return nil
}

// RegisterSharedMediaIfNotExists registers media only if it isn't already present
func (mc *MediaClient) RegisterSharedMediaIfNotExists(name string) error {
	err := mc.RegisterSharedMedia(name)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") || strings.Contains(err.Error(), "409") {
			slog.Debug("media already registered, skipping", "name", name)
			return nil
		}
		return err
	}
	return nil
}

// ListSharedMedia retrieves the full shared media pool
func (mc *MediaClient) ListSharedMedia() ([]store.SharedMedia, error) {
	req, err := http.NewRequest(http.MethodGet, mc.baseURL+"/media", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := mc.do(req)
	if err != nil {
		return nil, err
	}

	var listResp models.SharedMediaListResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return listResp.Media, nil
}

// DeleteSharedMedia removes media from the pool (and filesystem if present)
func (mc *MediaClient) DeleteSharedMedia(name string) error {
	deleteURL := fmt.Sprintf("%s/media/%s", mc.baseURL, url.PathEscape(name))
	req, err := http.NewRequest(http.MethodDelete, deleteURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := mc.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusNotFound {
		var errResp models.ErrorResponse
		if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
			return fmt.Errorf("server error: %s", errResp.Error)
		}
		return fmt.Errorf("server returned status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}

// UploadMedia uploads a local file into the shared pool
func (mc *MediaClient) UploadMedia(path string) (*models.UploadResponse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return nil, fmt.Errorf("failed to copy file contents: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize form: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, mc.baseURL+"/upload", &buf)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	body, err := mc.do(req)
	if err != nil {
		return nil, err
	}

	var uploadResp models.UploadResponse
	if err := json.Unmarshal(body, &uploadResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &uploadResp, nil
}

// ListSlideshows retrieves all slideshows
func (mc *MediaClient) ListSlideshows() ([]store.Slideshow, error) {
	req, err := http.NewRequest(http.MethodGet, mc.baseURL+"/slideshows", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	body, err := mc.do(req)
	if err != nil {
		return nil, err
	}

	var listResp models.SlideshowListResponse
	if err := json.Unmarshal(body, &listResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return listResp.Slideshows, nil
}

// CreateSlideshow creates a new slideshow and returns the stored record
func (mc *MediaClient) CreateSlideshow(req models.CreateSlideshowRequest) (*store.Slideshow, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	httpReq, err := http.NewRequest(http.MethodPost, mc.baseURL+"/slideshows", bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	body, err := mc.do(httpReq)
	if err != nil {
		return nil, err
	}

	var show store.Slideshow
	if err := json.Unmarshal(body, &show); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return &show, nil
}

// DeleteSlideshow removes a slideshow by code
func (mc *MediaClient) DeleteSlideshow(code string) error {
	deleteURL := fmt.Sprintf("%s/slideshows/%s", mc.baseURL, url.PathEscape(code))
	req, err := http.NewRequest(http.MethodDelete, deleteURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if _, err := mc.do(req); err != nil {
		return err
	}
	return nil
}
