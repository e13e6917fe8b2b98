package profile

import (
	"path/filepath"
	"strings"
)

// allowedImageExtensions matches what the upload client is permitted to send.
var allowedImageExtensions = map[string]bool{
	"png":  true,
	"jpg":  true,
	"jpeg": true,
	"webp": true,
	"heic": true,
	"heif": true,
}

// AllowedImageFile reports whether filename carries an accepted image extension.
func AllowedImageFile(filename string) bool {
	return allowedImageExtensions[extension(filename)]
}

func extension(filename string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
}

// imageFormat maps a file extension to the bare image subtype the generative
// model expects for inline image data.
func imageFormat(filename string) string {
	ext := extension(filename)
	if ext == "jpg" {
		return "jpeg"
	}
	return ext
}
