package svg

import (
	"fmt"
	"image"
	"iter"

	"github.com/rm-hull/icon-tools/internal/png"
)

// Rect is a single unit-square pixel in the vector transcription.
type Rect struct {
	X, Y    int
	Fill    string
	Opacity float64
}

// Rectangles yields one Rect per pixel of img with alpha > 0, scanning rows
// top to bottom and each row left to right. The sequence can be ranged over
// more than once.
func Rectangles(img *image.NRGBA) iter.Seq[Rect] {
	return func(yield func(Rect) bool) {
		r := img.Bounds()
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				c := img.NRGBAAt(x, y)
				if c.A == 0 {
					continue
				}
				rect := Rect{
					X:       x - r.Min.X,
					Y:       y - r.Min.Y,
					Fill:    fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B),
					Opacity: float64(c.A) / 255.0,
				}
				if !yield(rect) {
					return
				}
			}
		}
	}
}

// Rasterize resizes img to a size x size square and returns its pixels as
// unit rectangles.
func Rasterize(img *image.NRGBA, size int) (*image.NRGBA, iter.Seq[Rect], error) {
	resized, err := png.Resize(img, size)
	if err != nil {
		return nil, nil, err
	}
	return resized, Rectangles(resized), nil
}
