package imagepkg

import (
	"errors"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// ErrInvalidLogo reports a logo that could not be fetched or decoded.
// It is fatal for the whole batch: a document with silently missing
// logos is worse than failing fast.
var ErrInvalidLogo = errors.New("invalid logo image")

// MaxLogoRatio is the largest fraction of the symbol's linear dimension a
// logo can cover before scannability degrades. Compose does not clamp to
// it; callers decide whether to warn or reject.
const MaxLogoRatio = 0.30

// Compose encodes dest into a styled QR symbol, overlays the logo at the
// exact center, and resizes the result to cellW x cellH. The logo is
// resized to logoW x logoH independently of the cell footprint, so logo
// sharpness and final size stay decoupled. Pure function: no disk or
// network I/O happens here.
func Compose(dest string, logo image.Image, style Style, cellW, cellH, logoW, logoH int) (image.Image, error) {
	if logo == nil {
		return nil, fmt.Errorf("%w: nil bitmap", ErrInvalidLogo)
	}
	m, err := EncodeMatrix(dest)
	if err != nil {
		return nil, err
	}
	qr := style.Render(m)

	l := imaging.Resize(logo, logoW, logoH, imaging.Lanczos)
	b := qr.Bounds()
	pos := image.Pt((b.Dx()-logoW)/2, (b.Dy()-logoH)/2)

	var out *image.NRGBA
	if hasAlpha(logo) {
		// Blend through the logo's own alpha so transparent corners keep
		// the modules underneath visible.
		out = imaging.Overlay(qr, l, pos, 1.0)
	} else {
		out = imaging.Paste(qr, l, pos)
	}
	return imaging.Resize(out, cellW, cellH, imaging.Lanczos), nil
}

// ResizeToCell scales img to the cell footprint with the same resampling
// policy Compose uses.
func ResizeToCell(img image.Image, w, h int) image.Image {
	return imaging.Resize(img, w, h, imaging.Lanczos)
}

func hasAlpha(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return !o.Opaque()
	}
	return false
}
