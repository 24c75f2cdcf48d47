package utils

import (
	"path/filepath"
	"strings"

	"comicreader/config"
)

var contentTypes = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"webp": "image/webp",
}

const defaultContentType = "application/octet-stream"

// Ext returns the lower-case extension of name without the dot. Dotfiles
// such as ".png" have no extension.
func Ext(name string) string {
	ext := filepath.Ext(name)
	if ext == name {
		return ""
	}
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// IsImageName reports whether name carries one of the recognized image
// extensions.
func IsImageName(name string) bool {
	ext := Ext(name)
	for _, allowed := range config.ImageExtensions {
		if ext == allowed {
			return true
		}
	}
	return false
}

// ContentType maps a file name to the MIME type served for it.
func ContentType(name string) string {
	if ct, ok := contentTypes[Ext(name)]; ok {
		return ct
	}
	return defaultContentType
}
