package storage

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/chai2010/webp"

	"comicreader/config"
	"comicreader/utils"
)

// verifyHeader decodes only the image header of path, which is enough to
// reject truncated or non-image files without reading pixel data.
func verifyHeader(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	var cfg image.Config
	if utils.Ext(path) == "webp" {
		cfg, err = webp.DecodeConfig(f)
	} else {
		cfg, _, err = image.DecodeConfig(f)
	}
	if err != nil {
		return fmt.Errorf("header decode failed: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Width > config.MaxImageDimension || cfg.Height > config.MaxImageDimension {
		return fmt.Errorf("dimensions %dx%d exceed %d", cfg.Width, cfg.Height, config.MaxImageDimension)
	}
	return nil
}
