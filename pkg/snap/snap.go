// Package snap implements the drag-time alignment engine: grid rounding
// plus edge/center matching against the other frames on the template,
// with transient guide lines for every match.
//
// Snapping never fails; inputs that match nothing simply pass through
// grid rounding untouched. The whole engine is pure, so snapping a
// snapped position is a no-op.
package snap

import (
	"math"

	"github.com/framery/framery/pkg/frame"
)

// Engine defaults, in design units.
const (
	DefaultGridSize  = 10.0
	FineGridSize     = 5.0
	DefaultThreshold = 10.0
)

// Orientation of a guide line.
type Orientation int

// Guide orientations.
const (
	Vertical Orientation = iota
	Horizontal
)

// Guide is a transient alignment line shown while dragging: a vertical
// line at X=Position or a horizontal line at Y=Position in design space.
type Guide struct {
	Orientation Orientation
	Position    float64
}

// Result is a snapped candidate position plus the guides to render while
// the drag is active. Guides are cleared by the caller on gesture end.
type Result struct {
	X, Y   float64
	Guides []Guide
}

// Engine holds the active snapping configuration.
type Engine struct {
	GridSize  float64 // grid cell size; FineGridSize when fine mode is on
	Threshold float64 // max distance for an edge/center match
}

// NewEngine returns an engine with the default grid and threshold.
func NewEngine() *Engine {
	return &Engine{GridSize: DefaultGridSize, Threshold: DefaultThreshold}
}

// SetFine toggles fine mode, which halves the grid cell size.
func (e *Engine) SetFine(fine bool) {
	if fine {
		e.GridSize = FineGridSize
	} else {
		e.GridSize = DefaultGridSize
	}
}

// Snap resolves a proposed top-left position (x,y) for the frame being
// dragged. Grid snapping applies first; any edge or center match against
// another frame overrides the grid value on that axis and contributes a
// guide line.
//
// Edge comparison covers left/right/center-x against the other frame's
// left/right/center-x, and top/bottom/center-y against the same on the
// vertical axis. When several frames match on one axis the nearest match
// wins; equal distances fall back to iteration order, keeping results
// deterministic across runs.
//
// moving is the dragged frame (its size determines edge offsets) and is
// excluded from comparison by id.
func (e *Engine) Snap(x, y float64, moving *frame.Frame, others []*frame.Frame) Result {
	res := Result{
		X: e.snapToGrid(x),
		Y: e.snapToGrid(y),
	}

	// Offsets from the frame's origin to its own left/center/right edge
	// (and top/center/bottom on the vertical axis).
	xOffsets := [3]float64{0, moving.Width / 2, moving.Width}
	yOffsets := [3]float64{0, moving.Height / 2, moving.Height}

	bestX := math.Inf(1)
	bestY := math.Inf(1)

	for _, other := range others {
		if other.ID == moving.ID {
			continue
		}
		xTargets := [3]float64{other.X, other.X + other.Width/2, other.X + other.Width}
		yTargets := [3]float64{other.Y, other.Y + other.Height/2, other.Y + other.Height}

		for _, off := range xOffsets {
			for _, target := range xTargets {
				d := math.Abs(x + off - target)
				if d <= e.Threshold && d < bestX {
					bestX = d
					res.X = target - off
					res.Guides = setGuide(res.Guides, Vertical, target)
				}
			}
		}
		for _, off := range yOffsets {
			for _, target := range yTargets {
				d := math.Abs(y + off - target)
				if d <= e.Threshold && d < bestY {
					bestY = d
					res.Y = target - off
					res.Guides = setGuide(res.Guides, Horizontal, target)
				}
			}
		}
	}

	return res
}

// SnapPoint applies grid snapping alone to a free point, used for frame
// creation and other non-drag placements.
func (e *Engine) SnapPoint(x, y float64) (float64, float64) {
	return e.snapToGrid(x), e.snapToGrid(y)
}

func (e *Engine) snapToGrid(v float64) float64 {
	if e.GridSize <= 0 || !finite(v) {
		return v
	}
	return math.Round(v/e.GridSize) * e.GridSize
}

// setGuide replaces the guide with the given orientation, keeping at most
// one guide per axis (the winning match).
func setGuide(guides []Guide, o Orientation, pos float64) []Guide {
	for i := range guides {
		if guides[i].Orientation == o {
			guides[i].Position = pos
			return guides
		}
	}
	return append(guides, Guide{Orientation: o, Position: pos})
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
