package png

import (
	"fmt"
	"image"
	"image/color"
)

type Corner struct {
	Name  string
	X, Y  int
	Color color.NRGBA
}

func (c Corner) String() string {
	return fmt.Sprintf("(%d,%d): R=%d, G=%d, B=%d, A=%d", c.X, c.Y, c.Color.R, c.Color.G, c.Color.B, c.Color.A)
}

type Metadata struct {
	Width, Height int
	Mode          string
	Format        string
	// Shape is (height, width, channels).
	Shape   [3]int
	Corners [4]Corner
}

// HasAlpha reports whether the source image carried an alpha channel.
func (m Metadata) HasAlpha() bool {
	return m.Mode == "RGBA"
}

// Describe reports the dimensions of p and the colour of its four corners,
// ordered top-left, top-right, bottom-left, bottom-right.
func Describe(p *PngImage) Metadata {
	r := p.Img.Bounds()
	w, h := r.Dx(), r.Dy()
	meta := Metadata{
		Width:  w,
		Height: h,
		Mode:   p.Mode,
		Format: p.Format,
		Shape:  [3]int{h, w, channels(p.Mode)},
	}
	if w == 0 || h == 0 {
		return meta
	}

	corners := []struct {
		name string
		pt   image.Point
	}{
		{"top-left", image.Pt(0, 0)},
		{"top-right", image.Pt(w-1, 0)},
		{"bottom-left", image.Pt(0, h-1)},
		{"bottom-right", image.Pt(w-1, h-1)},
	}
	for i, c := range corners {
		meta.Corners[i] = Corner{
			Name:  c.name,
			X:     c.pt.X,
			Y:     c.pt.Y,
			Color: p.Img.NRGBAAt(r.Min.X+c.pt.X, r.Min.Y+c.pt.Y),
		}
	}
	return meta
}

func channels(mode string) int {
	switch mode {
	case "RGBA":
		return 4
	case "RGB":
		return 3
	default:
		return 1
	}
}
