package port

import (
	"context"
	"io"
)

// UploadInput encapsulates the parameters needed to upload an object.
type UploadInput struct {
	Key         string
	Body        io.Reader
	ContentType string
	Size        int64
}

// ObjectStorage abstracts the remote bucket holding hosted images.
type ObjectStorage interface {
	Upload(ctx context.Context, input UploadInput) (string, error)
	Delete(ctx context.Context, key string) error
}
