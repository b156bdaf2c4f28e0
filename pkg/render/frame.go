package render

import (
	"github.com/fogleman/gg"

	"github.com/framery/framery/pkg/frame"
	"github.com/framery/framery/pkg/geom"
)

const (
	borderWidth     = 1.5
	handleSize      = 8.0
	rotateHandleRad = 5.0
)

// drawFrame paints one frame: rotated clip, content inside the clip,
// then the border stroke.
func drawFrame(dc *gg.Context, f *frame.Frame, r *renderer) error {
	scale := r.scale
	rect := scaledRect(f, scale)
	cx, cy := rect.X+rect.W/2, rect.Y+rect.H/2
	rad := gg.Radians(f.Rotation)
	rotated := f.Rotation != 0
	outline := frame.Outline(f)

	dc.Push()
	if rotated {
		dc.RotateAbout(rad, cx, cy)
	}
	applyPath(dc, outline, rect.X, rect.Y, scale)
	if rotated && r.mode == RotationContentUpright {
		// The clip path is already built under the rotated matrix;
		// undoing the rotation leaves content axis-aligned behind it.
		dc.RotateAbout(-rad, cx, cy)
	}
	dc.Clip()

	var err error
	switch f.Kind {
	case frame.KindText:
		err = drawText(dc, f, rect, r)
	default:
		drawImageContent(dc, f, rect, r)
	}
	dc.Pop()
	if err != nil {
		return err
	}
	if r.final {
		return nil
	}

	dc.Push()
	if rotated {
		dc.RotateAbout(rad, cx, cy)
	}
	applyPath(dc, outline, rect.X, rect.Y, scale)
	if f.ID == r.selection {
		dc.SetHexColor(selectionColor)
	} else {
		dc.SetHexColor(borderColor)
	}
	dc.SetLineWidth(borderWidth * scale)
	dc.Stroke()
	dc.Pop()

	return nil
}

// drawImageContent paints the frame's content image, or the neutral
// placeholder fill when none is resolved. The fill covers the rotated
// clip's whole envelope so upright mode leaves no uncovered corners.
func drawImageContent(dc *gg.Context, f *frame.Frame, rect geom.Rect, r *renderer) {
	if img, ok := r.content[f.ID]; ok && img != nil {
		dc.DrawImage(img, int(rect.X), int(rect.Y))
		return
	}
	if r.final {
		return
	}

	env := clipEnvelope(rect, f.Rotation)
	dc.SetHexColor(placeholderColor)
	dc.DrawRectangle(env.MinX, env.MinY, env.Width(), env.Height())
	dc.Fill()
}

// drawSelection paints the eight resize handles, the rotate handle and
// its stem, all under the frame's rotation so chrome tracks the outline.
func drawSelection(dc *gg.Context, f *frame.Frame, scale float64) {
	rect := scaledRect(f, scale)
	cx, cy := rect.X+rect.W/2, rect.Y+rect.H/2
	rotated := f.Rotation != 0

	dc.Push()
	if rotated {
		dc.RotateAbout(gg.Radians(f.Rotation), cx, cy)
	}

	rot := geom.Pt(cx, rect.Y-frame.RotateHandleOffset*scale)

	dc.SetHexColor(selectionColor)
	dc.SetLineWidth(1)
	dc.DrawLine(cx, rect.Y, rot.X, rot.Y)
	dc.Stroke()

	size := handleSize * scale
	for _, h := range frame.Handles {
		a := h.Anchor(geom.Rect{X: rect.X, Y: rect.Y, W: rect.W, H: rect.H})
		dc.DrawRectangle(a.X-size/2, a.Y-size/2, size, size)
		dc.SetHexColor(handleFillColor)
		dc.FillPreserve()
		dc.SetHexColor(selectionColor)
		dc.Stroke()
	}

	dc.DrawCircle(rot.X, rot.Y, rotateHandleRad*scale)
	dc.SetHexColor(handleFillColor)
	dc.FillPreserve()
	dc.SetHexColor(selectionColor)
	dc.Stroke()

	dc.Pop()
}

func scaledRect(f *frame.Frame, scale float64) geom.Rect {
	return geom.Rect{
		X: f.X * scale,
		Y: f.Y * scale,
		W: f.Width * scale,
		H: f.Height * scale,
	}
}

// clipEnvelope is the axis-aligned bounds of the rect rotated about its
// center, the area a fill must cover to reach every revealed pixel.
func clipEnvelope(rect geom.Rect, rotation float64) geom.Bounds {
	corners := geom.RotatedCorners(rect, rotation)
	return geom.BoundsOf(corners[:])
}
