package stage

import "github.com/rm-hull/icon-tools/internal/png"

type ThresholdWhiteStage struct {
	Threshold uint8
}

// Process makes near-white pixels fully transparent.
// A pixel is near-white when each of R, G and B is strictly above Threshold.
func (s *ThresholdWhiteStage) Process(p *png.PngImage) error {
	p.Set(png.ThresholdWhite(p.Img, s.Threshold))
	return nil
}
