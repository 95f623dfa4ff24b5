package imagepkg

import (
	"errors"
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// ModulePx is the raster size of one QR module before the final resize.
// It is fixed so that every code in a batch is rendered at the same scale
// and the resize to the cell footprint is a uniform scale.
const ModulePx = 10

// MinQuietZone is the required blank border around a symbol, in modules.
const MinQuietZone = 4

// ErrPayloadTooLarge reports a destination that does not fit the largest
// QR version at the highest error-correction level.
var ErrPayloadTooLarge = errors.New("payload too large for QR capacity")

// Matrix is the abstract QR module matrix; true marks a dark module.
// It is always square and carries no quiet zone.
type Matrix [][]bool

// EncodeMatrix encodes dest at the smallest QR version that fits it.
// Error correction is fixed at the highest level (~30% redundancy): the
// logo overlay occludes central modules and lower levels do not reliably
// survive that occlusion.
func EncodeMatrix(dest string) (Matrix, error) {
	q, err := qrcode.New(dest, qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrPayloadTooLarge, dest, err)
	}
	q.DisableBorder = true
	return Matrix(q.Bitmap()), nil
}
