package editor

import (
	"github.com/framery/framery/pkg/frame"
	"github.com/framery/framery/pkg/geom"
)

// Snapshot captures a frame's geometry and the pointer position at
// gesture start. Every pointer-move recomputes the frame from this
// snapshot plus the total delta; nothing accumulates across moves, so
// a gesture replayed to the same pointer position always yields the
// same geometry.
type Snapshot struct {
	FrameID  string
	Rect     geom.Rect
	Rotation float64
	Pointer  geom.Point
}

// Gesture is the active pointer interaction. Exactly one of the
// concrete types is live at a time; nil means idle. Callers type-switch
// on the concrete gesture and read its embedded Snapshot directly.
type Gesture interface {
	isGesture()
}

// DragGesture moves a frame.
type DragGesture struct {
	Snapshot
}

// ResizeGesture resizes a frame from one of the eight anchors.
type ResizeGesture struct {
	Snapshot
	Handle frame.Handle
}

// RotateGesture rotates a frame about its center.
type RotateGesture struct {
	Snapshot
}

func (DragGesture) isGesture()   {}
func (ResizeGesture) isGesture() {}
func (RotateGesture) isGesture() {}
