package port

import "context"

// ImageUploader turns raw image bytes into a durable hosted URL.
// Implementations validate size and content before transferring; a failed
// call is never retried here, callers decide whether to retry.
type ImageUploader interface {
	Upload(ctx context.Context, filename string, data []byte) (string, error)
}
