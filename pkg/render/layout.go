package render

import "github.com/framery/framery/pkg/geom"

// FitRect returns the aspect-fit placement of an imgW x imgH image
// inside a boxW x boxH box: scaled to the largest size that fits
// entirely, centered on both axes. Degenerate inputs collapse to an
// empty rect at the box center.
func FitRect(imgW, imgH, boxW, boxH float64) geom.Rect {
	if imgW <= 0 || imgH <= 0 || boxW <= 0 || boxH <= 0 {
		return geom.Rect{X: boxW / 2, Y: boxH / 2}
	}

	scale := boxW / imgW
	if s := boxH / imgH; s < scale {
		scale = s
	}

	w := imgW * scale
	h := imgH * scale
	return geom.Rect{
		X: (boxW - w) / 2,
		Y: (boxH - h) / 2,
		W: w,
		H: h,
	}
}
