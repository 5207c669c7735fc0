package domain

import "errors"

var (
	ErrNotFound             = errors.New("resource not found")
	ErrUnauthorized         = errors.New("unauthorized")
	ErrForbidden            = errors.New("forbidden")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrValidation           = errors.New("invalid input")
	ErrInvalidImageURL      = errors.New("image URL contains a reserved character")
	ErrFileTooLarge         = errors.New("file exceeds maximum allowed size")
	ErrUnsupportedImageType = errors.New("unsupported image type")
	ErrUploadNotConfigured  = errors.New("image upload endpoint is not configured")
	ErrUploadFailed         = errors.New("image upload failed")
	ErrContactNotDelivered  = errors.New("contact message could not be delivered")
)
