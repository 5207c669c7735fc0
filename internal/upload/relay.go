package upload

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"renova/internal/config"
	"renova/internal/domain"
	"renova/internal/port"
)

// Relay forwards image bytes to the external image-hosting API and returns
// the hosted URL. One attempt per call; callers decide whether to retry.
type Relay struct {
	endpoint string
	token    string
	maxBytes int64
	client   *http.Client
}

// NewRelay creates an ImageUploader backed by the external upload endpoint.
func NewRelay(cfg *config.UploadConfig) port.ImageUploader {
	return &Relay{
		endpoint: cfg.Endpoint,
		token:    cfg.Token,
		maxBytes: cfg.MaxBytes,
		client:   &http.Client{Timeout: cfg.Timeout},
	}
}

// uploadResponse is the subset of the image host's reply we care about.
type uploadResponse struct {
	URL string `json:"url"`
}

func (r *Relay) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if r.endpoint == "" || r.token == "" {
		return "", domain.ErrUploadNotConfigured
	}
	if err := validateImagePayload(filename, data, r.maxBytes); err != nil {
		return "", err
	}

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("relay.Upload: building form: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("relay.Upload: writing form: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("relay.Upload: closing form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, body)
	if err != nil {
		return "", fmt.Errorf("relay.Upload: building request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+r.token)

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("%w: reading response: %v", domain.ErrUploadFailed, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("%w: upstream returned %d: %s",
			domain.ErrUploadFailed, resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var out uploadResponse
	if err := json.Unmarshal(respBody, &out); err != nil || out.URL == "" {
		return "", fmt.Errorf("%w: response missing hosted URL", domain.ErrUploadFailed)
	}
	return out.URL, nil
}

// validateImagePayload enforces the shared upload preconditions: a non-empty
// payload that sniffs as an image and fits under the configured ceiling.
func validateImagePayload(filename string, data []byte, maxBytes int64) error {
	if !domain.HasImageExtension(filename) {
		return domain.ErrUnsupportedImageType
	}
	if len(data) == 0 {
		return domain.ErrUnsupportedImageType
	}
	if int64(len(data)) > maxBytes {
		return domain.ErrFileTooLarge
	}
	sniffLen := len(data)
	if sniffLen > 512 {
		sniffLen = 512
	}
	detected := http.DetectContentType(data[:sniffLen])
	if !strings.HasPrefix(detected, "image/") {
		return domain.ErrUnsupportedImageType
	}
	return nil
}
