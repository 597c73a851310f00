package ogimage

import (
	"fmt"
	"image"
	"image/jpeg"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Files above this size get flagged; large preview images slow down link
// unfurling. Advisory only, the file is kept either way.
const sizeWarnThreshold = 300 * 1024

// WriteJPEG encodes img at the given quality and writes it to path,
// creating parent directories as needed. Returns the written file size.
func WriteJPEG(img image.Image, path string, quality int) (int64, error) {
	if quality <= 0 {
		quality = 90
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return 0, fmt.Errorf("creating output directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("creating %s: %w", path, err)
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: quality}); err != nil {
		f.Close()
		return 0, fmt.Errorf("encoding JPEG: %w", err)
	}
	if err := f.Close(); err != nil {
		return 0, fmt.Errorf("closing %s: %w", path, err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", path, err)
	}
	return fi.Size(), nil
}

// CheckSize reports whether size is within the advisory limit, warning
// through the logger when it is not.
func CheckSize(path string, size int64) bool {
	if size > sizeWarnThreshold {
		logrus.Warnf("%s is %.1f KB, above the recommended 300 KB", path, float64(size)/1024)
		return false
	}
	return true
}
