package ogimage

import (
	"testing"

	"golang.org/x/image/font/basicfont"
)

func TestLoadFacesFallsBackWithoutPlatformFonts(t *testing.T) {
	orig := fontPaths
	fontPaths = []string{"/nonexistent/no-such-font.ttf"}
	defer func() { fontPaths = orig }()

	f := loadFaces()
	if f.title != basicfont.Face7x13 || f.subtitle != basicfont.Face7x13 {
		t.Fatal("expected built-in bitmap face when no platform font exists")
	}
}

func TestParseFacesRejectsGarbage(t *testing.T) {
	if _, err := parseFaces([]byte("definitely not a font file")); err == nil {
		t.Fatal("expected error parsing garbage font data")
	}
}
