// Package optimize re-encodes the site's image assets in place, stripping
// metadata and applying format-specific compression.
package optimize

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
	"github.com/sirupsen/logrus"
	_ "golang.org/x/image/webp" // register WebP with image.Decode

	"github.com/cachemcclure/siteassets/internal/config"
)

const defaultQuality = 90

// Options controls a batch run.
type Options struct {
	Assets   []config.Asset
	MaxWidth int // downscale images wider than this; 0 disables
	Quality  int // lossy quality for jpg/webp output
}

// FileResult records the outcome for one processed file.
type FileResult struct {
	Path         string
	OriginalSize int64
	NewSize      int64
}

// Saved returns the bytes saved for this file. Negative when the re-encode
// came out larger than the original.
func (r FileResult) Saved() int64 { return r.OriginalSize - r.NewSize }

// SavedPercent returns the savings as a percentage of the original size.
func (r FileResult) SavedPercent() float64 {
	if r.OriginalSize == 0 {
		return 0
	}
	return float64(r.Saved()) / float64(r.OriginalSize) * 100
}

// Summary accumulates results across a run.
type Summary struct {
	Processed []FileResult
	Skipped   []string
}

// TotalSaved sums the per-file savings.
func (s *Summary) TotalSaved() int64 {
	var total int64
	for _, r := range s.Processed {
		total += r.Saved()
	}
	return total
}

// Run optimizes every asset in order. Missing files are skipped; the first
// processing error aborts the rest of the batch, and the returned summary
// covers only the files finished before it.
func Run(opts Options) (*Summary, error) {
	sum := &Summary{}
	for _, asset := range opts.Assets {
		if _, err := os.Stat(asset.Path); os.IsNotExist(err) {
			logrus.Infof("skipping %s (not found)", asset.Path)
			sum.Skipped = append(sum.Skipped, asset.Path)
			continue
		}
		res, err := File(asset.Path, asset.Format, opts)
		if err != nil {
			return sum, fmt.Errorf("optimizing %s: %w", asset.Path, err)
		}
		sum.Processed = append(sum.Processed, *res)
	}
	return sum, nil
}

// File re-encodes a single image in place: decodes it, drops every metadata
// segment by rebuilding the image from pixel data alone, optionally
// downscales it, and writes it back with format-specific compression.
func File(path, format string, opts Options) (*FileResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading: %w", err)
	}

	src, kind, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decoding: %w", err)
	}
	logrus.Debugf("%s: decoded %s %dx%d", path, kind, src.Bounds().Dx(), src.Bounds().Dy())

	if segs := MetadataSegments(data); len(segs) > 0 {
		logrus.Debugf("%s: stripping %s", path, strings.Join(segs, ", "))
	}

	// Cloning copies pixels into a fresh buffer; EXIF, ICC and text chunks
	// do not survive.
	img := imaging.Clone(src)

	if opts.MaxWidth > 0 && img.Bounds().Dx() > opts.MaxWidth {
		img = imaging.Resize(img, opts.MaxWidth, 0, imaging.Lanczos)
	}

	if isJPEG(format) && needsFlatten(src) {
		img = flattenOntoWhite(img)
	}

	quality := opts.Quality
	if quality <= 0 {
		quality = defaultQuality
	}
	if err := encode(path, img, format, quality); err != nil {
		return nil, err
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat output: %w", err)
	}

	return &FileResult{
		Path:         path,
		OriginalSize: int64(len(data)),
		NewSize:      fi.Size(),
	}, nil
}

func isJPEG(format string) bool {
	return format == "jpg" || format == "jpeg"
}

// needsFlatten reports whether src carries transparency the JPEG encoder
// would otherwise silently discard.
func needsFlatten(src image.Image) bool {
	if _, ok := src.(*image.Paletted); ok {
		return true
	}
	if o, ok := src.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return false
}

// flattenOntoWhite composites img over an opaque white canvas so transparent
// regions come out white in formats without an alpha channel.
func flattenOntoWhite(img image.Image) *image.NRGBA {
	bg := imaging.New(img.Bounds().Dx(), img.Bounds().Dy(), color.White)
	return imaging.Overlay(bg, img, image.Point{}, 1.0)
}

func encode(path string, img *image.NRGBA, format string, quality int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}

	switch format {
	case "png":
		enc := png.Encoder{CompressionLevel: png.BestCompression}
		err = enc.Encode(f, img)
	case "jpg", "jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: quality})
	case "webp":
		var wopts *encoder.Options
		wopts, err = encoder.NewLossyEncoderOptions(encoder.PresetDefault, float32(quality))
		if err == nil {
			err = webp.Encode(f, img, wopts)
		}
	default:
		err = fmt.Errorf("unsupported format %q", format)
	}
	if err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", format, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("closing output: %w", err)
	}
	return nil
}
