package editor

import (
	"math"

	"github.com/framery/framery/pkg/frame"
	"github.com/framery/framery/pkg/geom"
)

// resizeRect computes the rect produced by dragging a resize anchor by
// delta. The edge opposite the dragged one stays fixed, and both
// dimensions are clamped to the minimum size against that fixed edge.
func resizeRect(r geom.Rect, h frame.Handle, delta geom.Point) geom.Rect {
	out := r

	switch h {
	case frame.HandleNW, frame.HandleW, frame.HandleSW:
		out.X = r.X + delta.X
		out.W = r.W - delta.X
		if out.W < frame.MinSize {
			out.W = frame.MinSize
			out.X = r.X + r.W - frame.MinSize
		}
	case frame.HandleNE, frame.HandleE, frame.HandleSE:
		out.W = math.Max(r.W+delta.X, frame.MinSize)
	}

	switch h {
	case frame.HandleNW, frame.HandleN, frame.HandleNE:
		out.Y = r.Y + delta.Y
		out.H = r.H - delta.Y
		if out.H < frame.MinSize {
			out.H = frame.MinSize
			out.Y = r.Y + r.H - frame.MinSize
		}
	case frame.HandleSW, frame.HandleS, frame.HandleSE:
		out.H = math.Max(r.H+delta.Y, frame.MinSize)
	}

	return out
}

// angleDeg returns the angle of p as seen from c, in degrees.
func angleDeg(c, p geom.Point) float64 {
	return geom.Degrees(math.Atan2(p.Y-c.Y, p.X-c.X))
}
