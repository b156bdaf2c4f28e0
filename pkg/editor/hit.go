package editor

import (
	"github.com/framery/framery/pkg/frame"
	"github.com/framery/framery/pkg/geom"
)

// HandleHitRadius is how close the pointer must be to a handle anchor,
// in design units.
const HandleHitRadius = 8

// Region classifies what part of a frame the pointer hit.
type Region int

const (
	RegionNone Region = iota
	RegionBody
	RegionResize
	RegionRotate
)

// Hit-testing works on the unrotated bounding box for the body and all
// handles alike. The approximation drifts for strongly rotated frames
// but matches where the handles are drawn, so the two stay consistent.

// hitHandles tests the resize anchors and the rotate handle.
func hitHandles(f *frame.Frame, p geom.Point) (Region, frame.Handle) {
	r := f.Rect()
	for _, h := range frame.Handles {
		if h.Anchor(r).Distance(p) <= HandleHitRadius {
			return RegionResize, h
		}
	}
	if frame.RotateHandlePos(r).Distance(p) <= HandleHitRadius {
		return RegionRotate, 0
	}
	return RegionNone, 0
}

// hitBody tests the unrotated bounding box.
func hitBody(f *frame.Frame, p geom.Point) bool {
	return f.Rect().Contains(p)
}

// interactive reports whether pointer gestures may target the frame.
func interactive(f *frame.Frame) bool {
	return f.Visible && !f.Locked
}
