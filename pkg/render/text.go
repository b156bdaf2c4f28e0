package render

import (
	"math"
	"strings"

	"github.com/fogleman/gg"

	"github.com/framery/framery/pkg/frame"
	"github.com/framery/framery/pkg/geom"
)

// LineHeightFactor converts a font size into a line height.
const LineHeightFactor = 1.2

// WrapText greedily packs words into lines no wider than maxWidth,
// using measure for string widths. A word wider than maxWidth still
// occupies a line of its own; words are never broken.
func WrapText(text string, maxWidth float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	cur := words[0]
	for _, w := range words[1:] {
		if candidate := cur + " " + w; measure(candidate) <= maxWidth {
			cur = candidate
		} else {
			lines = append(lines, cur)
			cur = w
		}
	}
	return append(lines, cur)
}

// LineBudget is how many lines fit in a frame of the given height.
// Lines past the budget are dropped, not ellipsized.
func LineBudget(frameHeight, lineHeight float64) int {
	if lineHeight <= 0 {
		return 0
	}
	return int(math.Floor(frameHeight / lineHeight))
}

// drawText lays out the frame's text (filled content, or the designer
// placeholder when empty) inside the already-clipped frame box.
func drawText(dc *gg.Context, f *frame.Frame, rect geom.Rect, r *renderer) error {
	props := f.Text
	if props == nil {
		return nil
	}
	text := props.Content
	if text == "" && !r.final {
		text = props.Placeholder
	}
	if text == "" {
		return nil
	}

	size := props.FontSize * r.scale
	face, err := r.fonts.Face(props.FontFamily, size)
	if err != nil {
		return err
	}
	dc.SetFontFace(face)
	dc.SetHexColor(textColor(props.Color))

	lines := WrapText(text, rect.W, func(s string) float64 {
		w, _ := dc.MeasureString(s)
		return w
	})
	lineHeight := size * LineHeightFactor
	if budget := LineBudget(rect.H, lineHeight); len(lines) > budget {
		lines = lines[:budget]
	}

	var ax, x float64
	switch props.TextAlign {
	case frame.AlignLeft:
		ax, x = 0, rect.X
	case frame.AlignRight:
		ax, x = 1, rect.X+rect.W
	default:
		ax, x = 0.5, rect.X+rect.W/2
	}

	for i, line := range lines {
		y := rect.Y + (float64(i)+0.5)*lineHeight
		dc.DrawStringAnchored(line, x, y, ax, 0.5)
	}
	return nil
}

func textColor(c string) string {
	if c == "" {
		return "#333333"
	}
	return c
}
