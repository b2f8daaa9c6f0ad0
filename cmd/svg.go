package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/rm-hull/icon-tools/internal"
	"github.com/rm-hull/icon-tools/internal/favicon"
	"github.com/rm-hull/icon-tools/internal/png"
	"github.com/rm-hull/icon-tools/internal/png/stage"
	"github.com/rm-hull/icon-tools/internal/svg"
)

type SvgOptions struct {
	Input   string
	Output  string
	Size    int
	Preview string
	Ico     string
}

// Svg resizes the input icon to a Size x Size square and writes it as an SVG
// made of one rect per visible pixel. Optionally it also renders the SVG back
// to a PNG preview and writes a .ico favicon of the resized raster.
func Svg(opts SvgOptions, out io.Writer) error {
	img, err := png.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", opts.Input, err)
	}
	fmt.Fprintf(out, "Original image size: (%d, %d)\n", img.Bounds.Dx(), img.Bounds.Dy())

	if err := img.Pipeline(&stage.ResizeStage{Size: opts.Size}); err != nil {
		return fmt.Errorf("failed to resize image: %w", err)
	}
	fmt.Fprintf(out, "Resized image size: (%d, %d)\n", img.Bounds.Dx(), img.Bounds.Dy())

	var count int
	err = internal.WriteFile(opts.Output, func(w io.Writer) error {
		count, err = svg.Encode(w, img.Bounds.Dx(), img.Bounds.Dy(), svg.Rectangles(img.Img))
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.Output, err)
	}
	log.Printf("Wrote %d rects to %s", count, opts.Output)
	fmt.Fprintf(out, "SVG file generated: %s\n", opts.Output)

	if opts.Preview != "" {
		if err := preview(opts.Output, opts.Preview, img.Bounds.Dx(), img.Bounds.Dy()); err != nil {
			return err
		}
		fmt.Fprintf(out, "Preview generated: %s\n", opts.Preview)
	}

	if opts.Ico != "" {
		size := min(opts.Size, favicon.MaxSize)
		err := internal.WriteFile(opts.Ico, func(w io.Writer) error {
			return favicon.Encode(w, img.Img, size)
		})
		if err != nil {
			return fmt.Errorf("failed to write %s: %w", opts.Ico, err)
		}
		fmt.Fprintf(out, "Favicon generated: %s\n", opts.Ico)
	}
	return nil
}

func preview(svgPath, pngPath string, width, height int) error {
	f, err := os.Open(svgPath)
	if err != nil {
		return fmt.Errorf("%w: %w", png.ErrIO, err)
	}
	defer func() {
		_ = f.Close()
	}()

	rendered, err := svg.Render(f, width, height)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", svgPath, err)
	}
	if err := png.SaveNRGBA(png.ToNRGBA(rendered), pngPath); err != nil {
		return fmt.Errorf("failed to save %s: %w", pngPath, err)
	}
	return nil
}
