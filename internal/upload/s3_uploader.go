package upload

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"path"
	"strings"

	"github.com/google/uuid"

	"renova/internal/config"
	"renova/internal/domain"
	"renova/internal/port"
)

// S3Uploader satisfies port.ImageUploader by writing straight to object
// storage under a generated key, bypassing the external image host.
type S3Uploader struct {
	storage  port.ObjectStorage
	maxBytes int64
}

// NewS3Uploader creates an ImageUploader backed by object storage.
func NewS3Uploader(storage port.ObjectStorage, cfg *config.UploadConfig) port.ImageUploader {
	return &S3Uploader{storage: storage, maxBytes: cfg.MaxBytes}
}

func (u *S3Uploader) Upload(ctx context.Context, filename string, data []byte) (string, error) {
	if err := validateImagePayload(filename, data, u.maxBytes); err != nil {
		return "", err
	}

	ext := strings.ToLower(path.Ext(filename))
	key := fmt.Sprintf("content/%s%s", uuid.New(), ext)

	sniffLen := len(data)
	if sniffLen > 512 {
		sniffLen = 512
	}
	contentType := http.DetectContentType(data[:sniffLen])

	url, err := u.storage.Upload(ctx, port.UploadInput{
		Key:         key,
		Body:        bytes.NewReader(data),
		ContentType: contentType,
		Size:        int64(len(data)),
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}
	return url, nil
}
