package png

import (
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/rm-hull/icon-tools/internal"
)

// SaveNRGBA encodes img as a PNG at path, replacing any existing file only
// once the encode has fully succeeded.
func SaveNRGBA(img *image.NRGBA, path string) error {
	err := internal.WriteFile(path, func(w io.Writer) error {
		return png.Encode(w, img)
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}
