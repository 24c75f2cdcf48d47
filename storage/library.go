package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"comicreader/config"
	"comicreader/utils"
)

// Snapshot is a consistent view of the active directory and its image list.
type Snapshot struct {
	Dir    string
	HasDir bool
	Images []string
}

// Library holds the active directory and the image list scanned from it.
// Both fields are replaced together under one lock.
type Library struct {
	sync.RWMutex
	dir    string
	hasDir bool
	images []string
	opts   ListOptions
}

func NewLibrary(dir string, images []string, opts ListOptions) *Library {
	if images == nil {
		images = []string{}
	}
	return &Library{dir: dir, hasDir: dir != "", images: images, opts: opts}
}

// Open builds the startup library. An empty dir starts with no active
// directory; a supplied dir must contain at least one image.
func Open(dir string, opts ListOptions) (*Library, error) {
	if dir == "" {
		return NewLibrary("", nil, opts), nil
	}
	dir, images, err := scan(dir, opts)
	if err != nil {
		return nil, err
	}
	if len(images) == 0 {
		return nil, fmt.Errorf("%w in %s (looking for %s)", ErrEmptyDirectory, dir, extensionList())
	}
	return NewLibrary(dir, images, opts), nil
}

func (l *Library) Snapshot() Snapshot {
	l.RLock()
	defer l.RUnlock()
	images := make([]string, len(l.images))
	copy(images, l.images)
	return Snapshot{Dir: l.dir, HasDir: l.hasDir, Images: images}
}

// Select validates and scans path, then makes it the active directory.
// The scan runs outside the lock; only the swap is serialized.
func (l *Library) Select(path string) (int, error) {
	dir, images, err := scan(strings.TrimSpace(path), l.opts)
	if err != nil {
		return 0, err
	}

	l.Lock()
	l.dir = dir
	l.hasDir = true
	l.images = images
	l.Unlock()

	return len(images), nil
}

// ReadImage reads name from the active directory as of the call. Any
// failure is reported as ErrNotFound.
func (l *Library) ReadImage(name string) ([]byte, error) {
	l.RLock()
	dir, hasDir := l.dir, l.hasDir
	l.RUnlock()

	if !hasDir {
		return nil, fmt.Errorf("%w: no directory selected", ErrNotFound)
	}

	path := filepath.Join(dir, name)
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrNotFound, name, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %s is not a regular file", ErrNotFound, name)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: reading %s: %w", ErrNotFound, name, err)
	}
	return data, nil
}

func scan(path string, opts ListOptions) (string, []string, error) {
	dir, err := utils.ValidateDirectory(path)
	if err != nil {
		return "", nil, err
	}
	images, err := ListImages(dir, opts)
	if err != nil {
		return "", nil, err
	}
	return dir, images, nil
}

func extensionList() string {
	exts := make([]string, len(config.ImageExtensions))
	for i, ext := range config.ImageExtensions {
		exts[i] = "." + ext
	}
	return strings.Join(exts, ", ")
}
