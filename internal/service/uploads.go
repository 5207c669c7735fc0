package service

import (
	"context"
	"fmt"
	"log"

	"renova/internal/config"
	"renova/internal/port"
)

// UploadFile is an in-memory file received from a multipart form. Gallery
// uploads are capped at 2 MiB apiece, so buffering them is cheap.
type UploadFile struct {
	Filename string
	Data     []byte
}

// Partial-failure policies for multi-file gallery uploads.
const (
	PartialFailureAbort = "abort"
	PartialFailureKeep  = "keep"
)

// uploadGallery uploads each file independently, in submission order, and
// collects the hosted URLs. Under the abort policy the first failure fails
// the whole batch; under keep, failures are logged and skipped.
func uploadGallery(ctx context.Context, uploader port.ImageUploader, cfg *config.UploadConfig, files []UploadFile) ([]string, error) {
	urls := make([]string, 0, len(files))
	for _, f := range files {
		url, err := uploader.Upload(ctx, f.Filename, f.Data)
		if err != nil {
			if cfg.PartialFailure == PartialFailureKeep {
				log.Printf("uploadGallery: skipping failed upload of %s: %v", f.Filename, err)
				continue
			}
			return nil, fmt.Errorf("uploading gallery image %s: %w", f.Filename, err)
		}
		urls = append(urls, url)
	}
	return urls, nil
}
