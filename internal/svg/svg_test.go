package svg

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"image"
	"image/color"
	"slices"
	"testing"

	"github.com/rm-hull/icon-tools/internal/png"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type svgDoc struct {
	XMLName xml.Name `xml:"svg"`
	Width   string   `xml:"width,attr"`
	Height  string   `xml:"height,attr"`
	ViewBox string   `xml:"viewBox,attr"`
	Version string   `xml:"version,attr"`
	Groups  []struct {
		Rects []struct {
			X       string `xml:"x,attr"`
			Y       string `xml:"y,attr"`
			Width   string `xml:"width,attr"`
			Height  string `xml:"height,attr"`
			Fill    string `xml:"fill,attr"`
			Opacity string `xml:"opacity,attr"`
		} `xml:"rect"`
	} `xml:"g"`
}

func singleRedPixel() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	img.SetNRGBA(5, 5, color.NRGBA{255, 0, 0, 255})
	return img
}

func TestRectangles(t *testing.T) {
	t.Run("single red pixel", func(t *testing.T) {
		resized, rects, err := Rasterize(singleRedPixel(), 10)
		require.NoError(t, err)
		assert.Equal(t, image.Rect(0, 0, 10, 10), resized.Bounds())

		got := slices.Collect(rects)
		require.Len(t, got, 1)
		assert.Equal(t, Rect{X: 5, Y: 5, Fill: "#ff0000", Opacity: 1.0}, got[0])
	})

	t.Run("one rect per visible pixel", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 16, 16))
		visible := 0
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				a := uint8((x*16 + y) % 5 * 60)
				if a > 0 {
					visible++
				}
				img.SetNRGBA(x, y, color.NRGBA{uint8(x * 16), uint8(y * 16), 7, a})
			}
		}

		count := 0
		for r := range Rectangles(img) {
			c := img.NRGBAAt(r.X, r.Y)
			assert.NotZero(t, c.A)
			assert.InDelta(t, float64(c.A)/255.0, r.Opacity, 1e-6)
			count++
		}
		assert.Equal(t, visible, count)
	})

	t.Run("row-major order", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
		img.SetNRGBA(2, 0, color.NRGBA{1, 1, 1, 255})
		img.SetNRGBA(0, 1, color.NRGBA{2, 2, 2, 255})
		img.SetNRGBA(1, 0, color.NRGBA{3, 3, 3, 255})

		var pts []image.Point
		for r := range Rectangles(img) {
			pts = append(pts, image.Pt(r.X, r.Y))
		}
		assert.Equal(t, []image.Point{{1, 0}, {2, 0}, {0, 1}}, pts)
	})

	t.Run("restartable", func(t *testing.T) {
		rects := Rectangles(singleRedPixel())
		assert.Equal(t, slices.Collect(rects), slices.Collect(rects))
	})

	t.Run("fully transparent", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 4, 4))
		assert.Empty(t, slices.Collect(Rectangles(img)))
	})

	t.Run("fills follow the resized pixels", func(t *testing.T) {
		img := image.NewNRGBA(image.Rect(0, 0, 12, 12))
		for y := 0; y < 12; y++ {
			for x := 4; x < 12; x++ {
				c := color.NRGBA{255, 255, 255, 255}
				if x < 6 {
					c = color.NRGBA{0, 0, 0, 255}
				}
				img.SetNRGBA(x, y, c)
			}
		}

		for _, size := range []int{4, 5, 6, 7} {
			resized, rects, err := Rasterize(img, size)
			require.NoError(t, err)

			visible := 0
			for y := 0; y < size; y++ {
				for x := 0; x < size; x++ {
					if resized.NRGBAAt(x, y).A > 0 {
						visible++
					}
				}
			}

			count := 0
			for r := range rects {
				c := resized.NRGBAAt(r.X, r.Y)
				assert.Equal(t, fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B), r.Fill)
				assert.InDelta(t, float64(c.A)/255.0, r.Opacity, 1e-6)
				count++
			}
			assert.Equal(t, visible, count, "size %d", size)
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		_, _, err := Rasterize(singleRedPixel(), 0)
		assert.ErrorIs(t, err, png.ErrInvalidSize)
	})
}

func TestEncode(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 3))
	img.SetNRGBA(1, 2, color.NRGBA{0x12, 0xab, 0xef, 255})
	img.SetNRGBA(3, 0, color.NRGBA{0, 0, 0, 51})

	var buf bytes.Buffer
	count, err := Encode(&buf, 4, 3, Rectangles(img))
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var doc svgDoc
	require.NoError(t, xml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "4", doc.Width)
	assert.Equal(t, "3", doc.Height)
	assert.Equal(t, "0 0 4 3", doc.ViewBox)
	assert.Equal(t, "1.1", doc.Version)
	assert.Equal(t, "http://www.w3.org/2000/svg", doc.XMLName.Space)

	require.Len(t, doc.Groups, 1)
	rects := doc.Groups[0].Rects
	require.Len(t, rects, 2)

	assert.Equal(t, "3", rects[0].X)
	assert.Equal(t, "0", rects[0].Y)
	assert.Equal(t, "#000000", rects[0].Fill)
	assert.Equal(t, "0.2", rects[0].Opacity)

	assert.Equal(t, "1", rects[1].X)
	assert.Equal(t, "2", rects[1].Y)
	assert.Equal(t, "1", rects[1].Width)
	assert.Equal(t, "1", rects[1].Height)
	assert.Equal(t, "#12abef", rects[1].Fill)
	assert.Equal(t, "1.0", rects[1].Opacity)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestFormatOpacity(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{1.0, "1.0"},
		{0, "0.0"},
		{0.2, "0.2"},
		{128.0 / 255.0, "0.5019607843137255"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatOpacity(tt.in))
	}
}

func TestEncode_WriteError(t *testing.T) {
	_, err := Encode(failingWriter{}, 10, 10, Rectangles(singleRedPixel()))
	assert.ErrorContains(t, err, "disk full")
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	_, err := Encode(&buf, 10, 10, Rectangles(singleRedPixel()))
	require.NoError(t, err)

	img, err := Render(&buf, 10, 10)
	require.NoError(t, err)

	c := img.RGBAAt(5, 5)
	assert.Greater(t, c.R, uint8(200))
	assert.Less(t, c.G, uint8(50))
	assert.Greater(t, c.A, uint8(200))
	assert.Zero(t, img.RGBAAt(0, 0).A)
}
