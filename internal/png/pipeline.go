package png

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/draw"
)

var (
	ErrIO          = errors.New("unable to read image")
	ErrFormat      = errors.New("unsupported or corrupt image")
	ErrEmptyRegion = errors.New("no non-transparent pixels found")
)

// PngImage is an 8-bit straight-alpha RGBA raster along with the colour mode
// and format of the file it was decoded from.
type PngImage struct {
	Img    *image.NRGBA
	Bounds image.Rectangle
	Mode   string
	Format string
}

type PipelineStage interface {
	Process(img *PngImage) error
}

// Load opens the PNG at path and converts it to RGBA regardless of the
// source colour mode.
func Load(path string) (*PngImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return NewPngFromReader(bytes.NewReader(data))
}

func NewPngFromReader(r io.Reader) (*PngImage, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	rgba := ToNRGBA(img)
	return &PngImage{
		Img:    rgba,
		Bounds: rgba.Bounds(),
		Mode:   colorMode(img),
		Format: "PNG",
	}, nil
}

func (p *PngImage) Write(w io.Writer) error {
	return png.Encode(w, p.Img)
}

// Save writes the image to a temporary file alongside path and renames it
// into place once fully flushed.
func (p *PngImage) Save(path string) error {
	return SaveNRGBA(p.Img, path)
}

func (p *PngImage) Pipeline(stages ...PipelineStage) error {
	for _, stage := range stages {
		if err := stage.Process(p); err != nil {
			return err
		}
	}
	return nil
}

// Set replaces the raster, keeping the source mode and format.
func (p *PngImage) Set(img *image.NRGBA) {
	p.Img = img
	p.Bounds = img.Bounds()
}

// ToNRGBA copies img into a new NRGBA raster whose bounds start at the origin.
func ToNRGBA(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(out.Pix[y*out.Stride:y*out.Stride+4*b.Dx()], src.Pix[i:i+4*b.Dx()])
		}
		return out
	}
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}

// colorMode names the source colour model using PIL-style mode strings.
// The PNG decoder returns RGBA for opaque truecolour and NRGBA whenever the
// file carries an alpha channel, so gray+alpha ("LA") and truecolour with a
// tRNS chunk both report as "RGBA".
func colorMode(img image.Image) string {
	switch img.(type) {
	case *image.NRGBA, *image.NRGBA64:
		return "RGBA"
	case *image.RGBA, *image.RGBA64:
		return "RGB"
	case *image.Gray:
		return "L"
	case *image.Gray16:
		return "I;16"
	case *image.Paletted:
		return "P"
	default:
		return "unknown"
	}
}
