package export

import "image"

// FillCropRect is the source rect for an aspect-fill: the largest
// centered region of an imgW x imgH image with the target aspect ratio.
// The longer axis is cropped symmetrically; the result always scales to
// the target box without distortion.
func FillCropRect(imgW, imgH int, targetAspect float64) image.Rectangle {
	if imgW <= 0 || imgH <= 0 || targetAspect <= 0 {
		return image.Rect(0, 0, imgW, imgH)
	}

	imgAspect := float64(imgW) / float64(imgH)
	if imgAspect > targetAspect {
		// Too wide: crop left and right.
		w := int(float64(imgH)*targetAspect + 0.5)
		x := (imgW - w) / 2
		return image.Rect(x, 0, x+w, imgH)
	}
	// Too tall: crop top and bottom.
	h := int(float64(imgW)/targetAspect + 0.5)
	y := (imgH - h) / 2
	return image.Rect(0, y, imgW, y+h)
}
