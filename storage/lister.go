package storage

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"unicode/utf8"

	"comicreader/utils"
)

var (
	ErrIO             = errors.New("i/o error")
	ErrEmptyDirectory = errors.New("no images found")
	ErrNotFound       = errors.New("not found")
)

type ListOptions struct {
	// VerifyHeaders skips files whose image header fails to decode.
	VerifyHeaders bool
}

// ListImages returns the names of the recognized image files directly inside
// dir, sorted by byte order. Names that are not valid UTF-8 are skipped. Symlinks are followed; anything that does not
// resolve to a regular file is skipped.
func ListImages(dir string, opts ListOptions) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s: %w", ErrIO, dir, err)
	}

	names := []string{}
	for _, entry := range entries {
		name := entry.Name()
		// Non-UTF-8 names cannot round-trip through JSON or a URL.
		if !utf8.ValidString(name) {
			continue
		}
		if !utils.IsImageName(name) {
			continue
		}
		path := filepath.Join(dir, name)
		if !isRegularFile(entry, path) {
			continue
		}
		if opts.VerifyHeaders {
			if err := verifyHeader(path); err != nil {
				log.Printf("Warning: skipping %s: %v", path, err)
				continue
			}
		}
		names = append(names, name)
	}

	sort.Strings(names)
	return names, nil
}

func isRegularFile(entry os.DirEntry, path string) bool {
	if entry.Type().IsRegular() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
