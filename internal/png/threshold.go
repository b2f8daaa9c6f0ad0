package png

import "image"

const DefaultWhiteThreshold = 240

// ThresholdWhite returns a copy of img in which every pixel whose red, green
// and blue channels all exceed threshold has its alpha cleared. Colour
// channels are left untouched.
func ThresholdWhite(img *image.NRGBA, threshold uint8) *image.NRGBA {
	out := ToNRGBA(img)
	for i := 0; i+3 < len(out.Pix); i += 4 {
		if out.Pix[i] > threshold && out.Pix[i+1] > threshold && out.Pix[i+2] > threshold {
			out.Pix[i+3] = 0
		}
	}
	return out
}
