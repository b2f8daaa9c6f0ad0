package cmd

import (
	"fmt"
	"io"

	"github.com/rm-hull/icon-tools/internal/png"
)

// Check prints the size, mode and corner colours of the PNG at input, along
// with the bounds of its non-transparent pixels.
func Check(input string, out io.Writer) error {
	img, err := png.Load(input)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", input, err)
	}

	meta := png.Describe(img)
	fmt.Fprintf(out, "Image size: (%d, %d)\n", meta.Width, meta.Height)
	fmt.Fprintf(out, "Image mode: %s\n", meta.Mode)
	fmt.Fprintf(out, "Image format: %s\n", meta.Format)
	fmt.Fprintf(out, "Image shape: (%d, %d, %d)\n", meta.Shape[0], meta.Shape[1], meta.Shape[2])

	if meta.HasAlpha() {
		printBounds(out, png.AlphaBounds(img.Img))
	} else {
		fmt.Fprintln(out, "Not an RGBA image, cannot analyse transparency")
	}

	if meta.Width > 0 && meta.Height > 0 {
		fmt.Fprintln(out, "\nCorner pixel colours:")
		for _, c := range meta.Corners {
			fmt.Fprintf(out, "  %s\n", c)
		}
	}
	return nil
}

func printBounds(out io.Writer, b *png.Bounds) {
	if b == nil {
		fmt.Fprintln(out, "No non-transparent pixels")
		return
	}
	fmt.Fprintln(out, "Non-transparent bounds:")
	fmt.Fprintf(out, "  left: %d, right: %d\n", b.MinX, b.MaxX)
	fmt.Fprintf(out, "  top: %d, bottom: %d\n", b.MinY, b.MaxY)
	fmt.Fprintf(out, "  width: %d, height: %d\n", b.Width(), b.Height())
}
