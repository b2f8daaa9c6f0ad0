package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/rm-hull/icon-tools/internal/png"
	"github.com/rm-hull/icon-tools/internal/png/stage"
)

type ProcessOptions struct {
	Input     string
	Original  string
	Output    string
	Threshold uint8
	Margin    int
}

// Process turns the near-white background of the input icon transparent,
// saving the full-size result to Original and a copy cropped to the
// remaining content to Output. Nothing is written when the thresholded
// image has no visible pixels left.
func Process(opts ProcessOptions, out io.Writer) error {
	img, err := png.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", opts.Input, err)
	}
	fmt.Fprintf(out, "Original image size: (%d, %d)\n", img.Bounds.Dx(), img.Bounds.Dy())

	if err := img.Pipeline(&stage.ThresholdWhiteStage{Threshold: opts.Threshold}); err != nil {
		return fmt.Errorf("failed to process image pipeline: %w", err)
	}

	bounds := png.AlphaBounds(img.Img)
	if bounds == nil {
		fmt.Fprintln(out, "Error: no non-transparent pixels found")
		return fmt.Errorf("%s after thresholding at %d: %w", opts.Input, opts.Threshold, png.ErrEmptyRegion)
	}
	log.Printf("Content bounds: %s", bounds)

	cropped, err := png.CropWithMargin(img.Img, bounds, opts.Margin)
	if err != nil {
		return fmt.Errorf("failed to crop image: %w", err)
	}
	fmt.Fprintf(out, "Cropped image size: (%d, %d)\n", cropped.Bounds().Dx(), cropped.Bounds().Dy())

	if err := img.Save(opts.Original); err != nil {
		return fmt.Errorf("failed to save %s: %w", opts.Original, err)
	}
	if err := png.SaveNRGBA(cropped, opts.Output); err != nil {
		return fmt.Errorf("failed to save %s: %w", opts.Output, err)
	}

	fmt.Fprintln(out, "Image processing complete!")
	fmt.Fprintf(out, "  - thresholded image saved as: %s\n", opts.Original)
	fmt.Fprintf(out, "  - cropped image saved as: %s\n", opts.Output)
	return nil
}
