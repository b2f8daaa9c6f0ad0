package stage

import (
	"fmt"

	"github.com/rm-hull/icon-tools/internal/png"
)

type CropStage struct {
	Margin int
}

// Process crops the image to the bounds of its non-transparent pixels, grown
// by Margin pixels on each side and clamped to the image edges
func (s *CropStage) Process(p *png.PngImage) error {
	cropped, err := png.CropWithMargin(p.Img, png.AlphaBounds(p.Img), s.Margin)
	if err != nil {
		return fmt.Errorf("failed to crop image: %w", err)
	}
	p.Set(cropped)
	return nil
}
