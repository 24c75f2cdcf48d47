package utils

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrInvalidPath = errors.New("invalid path")

// ValidateDirectory returns path unchanged when it exists and is a directory.
func ValidateDirectory(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("%w: could not read %s: %w", ErrInvalidPath, path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a directory", ErrInvalidPath, path)
	}
	return path, nil
}

// IsSafeImageName reports whether name is a bare file name: no parent
// segments and no separators of either platform.
func IsSafeImageName(name string) bool {
	if name == "" || strings.Contains(name, "\x00") {
		return false
	}
	return !strings.Contains(name, "..") &&
		!strings.Contains(name, "/") &&
		!strings.Contains(name, "\\")
}
