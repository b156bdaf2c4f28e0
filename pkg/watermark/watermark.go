// Package watermark post-processes exported bitmaps for account tiers
// that do not ship clean output.
package watermark

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/framery/framery/pkg/fonts"
)

// Tier is the account tier driving watermark policy.
type Tier string

const (
	TierFree Tier = "free"
	TierPro  Tier = "pro"
)

// Stamper transforms an exported bitmap according to the tier. Paid
// tiers pass the bitmap through untouched.
type Stamper interface {
	Stamp(img image.Image, tier Tier) (image.Image, error)
}

// DiagonalStamper burns repeated translucent text diagonally across the
// bitmap for free-tier exports.
type DiagonalStamper struct {
	Text  string
	fonts *fonts.Resolver
}

// NewDiagonalStamper creates a stamper with the given overlay text.
func NewDiagonalStamper(text string) *DiagonalStamper {
	return &DiagonalStamper{Text: text, fonts: fonts.NewResolver()}
}

// Stamp overlays the watermark on free-tier output. Other tiers return
// the image unchanged.
func (s *DiagonalStamper) Stamp(img image.Image, tier Tier) (image.Image, error) {
	if tier != TierFree || s.Text == "" {
		return img, nil
	}

	b := img.Bounds()
	dc := gg.NewContextForImage(img)

	size := float64(b.Dx()) / 18
	face, err := s.fonts.Face(fonts.DefaultFamily, size)
	if err != nil {
		return nil, err
	}
	dc.SetFontFace(face)
	dc.SetRGBA(1, 1, 1, 0.35)

	cx := float64(b.Dx()) / 2
	cy := float64(b.Dy()) / 2
	dc.RotateAbout(gg.Radians(-30), cx, cy)

	// Tile the text generously past the edges so the rotated band still
	// covers the corners.
	stepX := size * float64(len(s.Text))
	stepY := size * 3
	for y := -cy; y < 3*cy; y += stepY {
		for x := -cx; x < 3*cx; x += stepX {
			dc.DrawStringAnchored(s.Text, x, y, 0.5, 0.5)
		}
	}

	return dc.Image(), nil
}
