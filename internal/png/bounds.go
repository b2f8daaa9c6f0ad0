package png

import (
	"fmt"
	"image"
)

// Bounds is an inclusive pixel rectangle.
type Bounds struct {
	MinX, MaxX int
	MinY, MaxY int
}

func (b Bounds) Width() int  { return b.MaxX - b.MinX + 1 }
func (b Bounds) Height() int { return b.MaxY - b.MinY + 1 }

func (b Bounds) String() string {
	return fmt.Sprintf("left=%d right=%d top=%d bottom=%d", b.MinX, b.MaxX, b.MinY, b.MaxY)
}

// AlphaBounds returns the smallest rectangle enclosing every pixel with
// alpha > 0, or nil when the image is fully transparent.
func AlphaBounds(img *image.NRGBA) *Bounds {
	r := img.Bounds()
	var found *Bounds
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := img.Pix[img.PixOffset(r.Min.X, y):]
		for x := r.Min.X; x < r.Max.X; x++ {
			if row[4*(x-r.Min.X)+3] == 0 {
				continue
			}
			if found == nil {
				found = &Bounds{MinX: x, MaxX: x, MinY: y, MaxY: y}
				continue
			}
			found.MinX = min(found.MinX, x)
			found.MaxX = max(found.MaxX, x)
			found.MaxY = y
		}
	}
	return found
}
