package imagepkg

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
)

func opaqueLogo(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: 200, G: 30, B: 30, A: 255})
		}
	}
	return img
}

func transparentCornerLogo(w, h int) *image.NRGBA {
	img := opaqueLogo(w, h)
	// Knock out the top-left quadrant.
	for y := 0; y < h/2; y++ {
		for x := 0; x < w/2; x++ {
			img.SetNRGBA(x, y, color.NRGBA{})
		}
	}
	return img
}

func TestComposeCellSize(t *testing.T) {
	tests := []struct {
		name         string
		cellW, cellH int
	}{
		{"square cell", 300, 300},
		{"tall cell", 200, 320},
		{"small cell", 64, 64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := Compose("https://example.com/item", opaqueLogo(40, 40), DefaultStyle(),
				tt.cellW, tt.cellH, 50, 50)
			if err != nil {
				t.Fatalf("Compose() error: %v", err)
			}
			b := img.Bounds()
			if b.Dx() != tt.cellW || b.Dy() != tt.cellH {
				t.Errorf("Compose() returned %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.cellW, tt.cellH)
			}
		})
	}
}

func TestComposeTransparentLogo(t *testing.T) {
	img, err := Compose("https://example.com/item", transparentCornerLogo(40, 40), DefaultStyle(),
		300, 300, 50, 50)
	if err != nil {
		t.Fatalf("Compose() error: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 300 || b.Dy() != 300 {
		t.Errorf("Compose() returned %dx%d, want 300x300", b.Dx(), b.Dy())
	}
}

func TestComposeNilLogo(t *testing.T) {
	_, err := Compose("https://example.com/item", nil, DefaultStyle(), 300, 300, 50, 50)
	if !errors.Is(err, ErrInvalidLogo) {
		t.Fatalf("Compose() error = %v, want ErrInvalidLogo", err)
	}
}

func TestComposePayloadTooLarge(t *testing.T) {
	_, err := Compose(strings.Repeat("a", 4000), opaqueLogo(40, 40), DefaultStyle(),
		300, 300, 50, 50)
	if !errors.Is(err, ErrPayloadTooLarge) {
		t.Fatalf("Compose() error = %v, want ErrPayloadTooLarge", err)
	}
}

func TestHasAlpha(t *testing.T) {
	if hasAlpha(opaqueLogo(4, 4)) {
		t.Error("hasAlpha() = true for a fully opaque image")
	}
	if !hasAlpha(transparentCornerLogo(4, 4)) {
		t.Error("hasAlpha() = false for an image with transparent pixels")
	}
}
