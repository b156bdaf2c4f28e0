// Package sink encodes composited bitmaps into deliverable formats.
package sink

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"

	"github.com/framery/framery/pkg/errors"
)

// RenderPNG encodes the bitmap as PNG.
func RenderPNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "png encode failed")
	}
	return buf.Bytes(), nil
}
