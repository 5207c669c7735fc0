package domain

import (
	"path"
	"strings"
)

// UserRole defines the back-office role hierarchy.
type UserRole string

const (
	RoleAdmin  UserRole = "admin"
	RoleEditor UserRole = "editor"
)

// AllowedImageExtensions lists the image file extensions accepted by both
// the upload pipeline and the image proxy (lowercase, with dot).
var AllowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// HasImageExtension reports whether the URL path ends in an allowed image
// extension, matched case-insensitively.
func HasImageExtension(urlPath string) bool {
	return AllowedImageExtensions[strings.ToLower(path.Ext(urlPath))]
}
