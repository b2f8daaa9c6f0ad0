package png

import (
	"errors"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/transform"
)

var ErrInvalidSize = errors.New("target size must be at least 1")

// Resize scales img to a size x size square with a Lanczos filter.
// An image that is already the requested size is returned as a copy.
func Resize(img *image.NRGBA, size int) (*image.NRGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidSize, size)
	}
	r := img.Bounds()
	if r.Dx() == size && r.Dy() == size {
		return ToNRGBA(img), nil
	}
	resized := transform.Resize(img, size, size, transform.Lanczos)
	clampToAlpha(resized)
	return ToNRGBA(resized), nil
}

// clampToAlpha caps each colour channel at the pixel's alpha. Lanczos
// overshoot leaves premultiplied channels above alpha next to transparent
// edges, which would otherwise wrap when converted back to straight alpha.
func clampToAlpha(img *image.RGBA) {
	for i := 0; i+3 < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		img.Pix[i] = min(img.Pix[i], a)
		img.Pix[i+1] = min(img.Pix[i+1], a)
		img.Pix[i+2] = min(img.Pix[i+2], a)
	}
}
