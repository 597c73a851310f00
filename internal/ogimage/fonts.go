package ogimage

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

// Platform locations for a bold sans-serif, tried in order.
var fontPaths = []string{
	"/System/Library/Fonts/Supplemental/Arial Bold.ttf",    // macOS
	"/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf", // Linux
	`C:\Windows\Fonts\arialbd.ttf`,                         // Windows
}

const (
	titleFontSize    = 80
	subtitleFontSize = 40
)

// faces holds the title and subtitle font faces.
type faces struct {
	title    font.Face
	subtitle font.Face
}

// loadFaces picks the first platform font that exists and parses. When none
// does, both faces fall back to the built-in bitmap font so generation still
// succeeds on a bare system.
func loadFaces() faces {
	for _, path := range fontPaths {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		f, err := parseFaces(data)
		if err != nil {
			logrus.Debugf("unusable font %s: %v", path, err)
			continue
		}
		logrus.Debugf("using font %s", path)
		return f
	}
	logrus.Debug("no platform font found, using built-in face")
	return faces{title: basicfont.Face7x13, subtitle: basicfont.Face7x13}
}

func parseFaces(data []byte) (faces, error) {
	ft, err := opentype.Parse(data)
	if err != nil {
		return faces{}, fmt.Errorf("parsing font: %w", err)
	}

	title, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    titleFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return faces{}, fmt.Errorf("title face: %w", err)
	}

	subtitle, err := opentype.NewFace(ft, &opentype.FaceOptions{
		Size:    subtitleFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return faces{}, fmt.Errorf("subtitle face: %w", err)
	}

	return faces{title: title, subtitle: subtitle}, nil
}
