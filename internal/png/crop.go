package png

import "image"

// CropWithMargin grows b by margin pixels on every side, clamps the result
// to the image and returns the enclosed pixels as a new image.
// A nil b means there was nothing to crop to and yields ErrEmptyRegion.
func CropWithMargin(img *image.NRGBA, b *Bounds, margin int) (*image.NRGBA, error) {
	if b == nil {
		return nil, ErrEmptyRegion
	}
	margin = max(margin, 0)

	r := img.Bounds()
	minX := max(r.Min.X, b.MinX-margin)
	minY := max(r.Min.Y, b.MinY-margin)
	maxX := min(r.Max.X-1, b.MaxX+margin)
	maxY := min(r.Max.Y-1, b.MaxY+margin)

	crop := image.Rect(minX, minY, maxX+1, maxY+1).Intersect(r)
	if crop.Empty() {
		return nil, ErrEmptyRegion
	}
	return ToNRGBA(img.SubImage(crop)), nil
}
