package ogimage

import (
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteJPEGRoundTrip(t *testing.T) {
	img := Render(testSpec)
	path := filepath.Join(t.TempDir(), "public", "og.jpg")

	size, err := WriteJPEG(img, path, 90)
	if err != nil {
		t.Fatalf("WriteJPEG: %v", err)
	}

	fi, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if fi.Size() != size {
		t.Errorf("reported size %d, stat says %d", size, fi.Size())
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("opening output: %v", err)
	}
	defer f.Close()

	cfg, err := jpeg.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output is not a decodable JPEG: %v", err)
	}
	if cfg.Width != Width || cfg.Height != Height {
		t.Errorf("output is %dx%d, want %dx%d", cfg.Width, cfg.Height, Width, Height)
	}

	t.Logf("wrote %s: %d bytes (%.1f KB)", path, size, float64(size)/1024)
}

func TestWriteJPEGDefaultQuality(t *testing.T) {
	img := Render(testSpec)
	path := filepath.Join(t.TempDir(), "og.jpg")

	if _, err := WriteJPEG(img, path, 0); err != nil {
		t.Fatalf("WriteJPEG with zero quality: %v", err)
	}
}

func TestCheckSizeAdvisory(t *testing.T) {
	cases := []struct {
		size int64
		ok   bool
	}{
		{100 * 1024, true},
		{300 * 1024, true}, // threshold itself is still fine
		{300*1024 + 1, false},
		{512 * 1024, false},
	}
	for _, c := range cases {
		if got := CheckSize("og.jpg", c.size); got != c.ok {
			t.Errorf("CheckSize(%d) = %v, want %v", c.size, got, c.ok)
		}
	}
}
