package ogimage

import (
	"image/color"
	"testing"
)

var testSpec = Spec{Title: "CACHE McCLURE", Subtitle: "Science Fiction Author"}

func TestRenderDimensions(t *testing.T) {
	img := Render(testSpec)

	b := img.Bounds()
	if b.Dx() != Width || b.Dy() != Height {
		t.Fatalf("canvas is %dx%d, want %dx%d", b.Dx(), b.Dy(), Width, Height)
	}
}

func TestRenderBackgroundAndAccents(t *testing.T) {
	img := Render(testSpec)

	checks := []struct {
		name string
		x, y int
		want color.RGBA
	}{
		{"background top-left area", 10, 10, Background},
		{"background between bar and title", 600, 205, Background},
		{"upper accent bar", 600, Height/2 - barOffsetY + 2, Accent},
		{"lower accent bar", 600, Height/2 + barOffsetY + 2, Accent},
		{"top-left corner horizontal arm", cornerInset + 5, cornerInset + 1, Accent},
		{"top-left corner vertical arm", cornerInset + 1, cornerInset + 30, Accent},
		{"top-right corner horizontal arm", Width - cornerInset - 5, cornerInset + 1, Accent},
		{"bottom-left corner vertical arm", cornerInset + 1, Height - cornerInset - 30, Accent},
		{"bottom-right corner horizontal arm", Width - cornerInset - 5, Height - cornerInset - 1, Accent},
		{"outside corner arm", cornerInset + cornerSize + 10, cornerInset + 1, Background},
	}

	for _, c := range checks {
		got := img.RGBAAt(c.x, c.y)
		if got != c.want {
			t.Errorf("%s at (%d,%d): got %v, want %v", c.name, c.x, c.y, got, c.want)
		}
	}
}

func TestRenderDrawsText(t *testing.T) {
	img := Render(testSpec)

	// Whatever face was resolved, the title band must contain pixels that
	// are neither background nor accent.
	textPixels := 0
	for y := Height/2 + titleOffsetY; y < Height/2+titleOffsetY+90; y++ {
		for x := 0; x < Width; x++ {
			c := img.RGBAAt(x, y)
			if c != Background && c != Accent {
				textPixels++
			}
		}
	}
	if textPixels == 0 {
		t.Fatal("no title glyphs drawn in the title band")
	}
	t.Logf("title band has %d text pixels", textPixels)
}

func TestRenderEmptySpec(t *testing.T) {
	// Empty strings must not panic; the decorations still render.
	img := Render(Spec{})
	if got := img.RGBAAt(600, Height/2-barOffsetY+2); got != Accent {
		t.Errorf("accent bar missing on empty spec: got %v", got)
	}
}
