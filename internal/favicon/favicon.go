package favicon

import (
	"fmt"
	"image"
	"io"

	ico "github.com/sergeymakinen/go-ico"
	"golang.org/x/image/draw"
)

// MaxSize is the largest edge the ICO format can describe.
const MaxSize = 256

// Encode writes img to w as a single-image .ico, scaled to fit a size x size
// square and centred on a transparent background.
func Encode(w io.Writer, img image.Image, size int) error {
	if size < 1 || size > MaxSize {
		return fmt.Errorf("icon size must be between 1 and %d, got %d", MaxSize, size)
	}
	if err := ico.Encode(w, Scale(img, size)); err != nil {
		return fmt.Errorf("failed to encode ico: %w", err)
	}
	return nil
}

// Scale fits src into a size x size square, preserving its aspect ratio.
func Scale(src image.Image, size int) *image.NRGBA {
	sb := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, size, size))
	if sb.Empty() {
		return dst
	}

	scale := min(float64(size)/float64(sb.Dx()), float64(size)/float64(sb.Dy()))
	newW := max(1, int(float64(sb.Dx())*scale+0.5))
	newH := max(1, int(float64(sb.Dy())*scale+0.5))
	offX := (size - newW) / 2
	offY := (size - newH) / 2

	dr := image.Rect(offX, offY, offX+newW, offY+newH)
	draw.CatmullRom.Scale(dst, dr, src, sb, draw.Over, nil)
	return dst
}
