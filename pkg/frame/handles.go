package frame

import "github.com/framery/framery/pkg/geom"

// RotateHandleOffset is how far above the top edge the rotate handle
// sits, in design units.
const RotateHandleOffset = 30

// Handle identifies one of the eight resize anchors on a frame's
// unrotated bounding box.
type Handle int

const (
	HandleNW Handle = iota
	HandleN
	HandleNE
	HandleE
	HandleSE
	HandleS
	HandleSW
	HandleW
)

// Handles lists all resize anchors in drawing order.
var Handles = [8]Handle{
	HandleNW, HandleN, HandleNE, HandleE,
	HandleSE, HandleS, HandleSW, HandleW,
}

// Anchor returns the handle's position on the unrotated box.
func (h Handle) Anchor(r geom.Rect) geom.Point {
	cx := r.X + r.W/2
	cy := r.Y + r.H/2
	switch h {
	case HandleNW:
		return geom.Pt(r.X, r.Y)
	case HandleN:
		return geom.Pt(cx, r.Y)
	case HandleNE:
		return geom.Pt(r.X+r.W, r.Y)
	case HandleE:
		return geom.Pt(r.X+r.W, cy)
	case HandleSE:
		return geom.Pt(r.X+r.W, r.Y+r.H)
	case HandleS:
		return geom.Pt(cx, r.Y+r.H)
	case HandleSW:
		return geom.Pt(r.X, r.Y+r.H)
	default:
		return geom.Pt(r.X, cy)
	}
}

// RotateHandlePos returns the rotate handle's position: centered
// horizontally, offset above the top edge of the unrotated box.
func RotateHandlePos(r geom.Rect) geom.Point {
	return geom.Pt(r.X+r.W/2, r.Y-RotateHandleOffset)
}
