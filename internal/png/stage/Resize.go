package stage

import "github.com/rm-hull/icon-tools/internal/png"

type ResizeStage struct {
	Size int
}

// Process resamples the image into a Size x Size square using a Lanczos filter
func (s *ResizeStage) Process(p *png.PngImage) error {
	resized, err := png.Resize(p.Img, s.Size)
	if err != nil {
		return err
	}
	p.Set(resized)
	return nil
}
