// Package editor holds the interaction state for one open template:
// selection, the active pointer gesture, transient snap guides, the
// camera, and the asynchronously loaded background image.
//
// The session assumes a single logical writer. Pointer events arrive in
// screen space and are mapped through the camera; all geometry math
// happens in design space. The background load is the only asynchronous
// boundary: it runs on its own goroutine and is folded back in when the
// caller pumps FinishBackgroundLoad.
package editor

import (
	"context"
	"image"

	"github.com/framery/framery/pkg/asset"
	"github.com/framery/framery/pkg/frame"
	"github.com/framery/framery/pkg/geom"
	"github.com/framery/framery/pkg/snap"
)

// BackgroundState tracks the background image lifecycle.
type BackgroundState int

const (
	BackgroundNone BackgroundState = iota
	BackgroundLoading
	BackgroundReady
	BackgroundFailed
)

type bgResult struct {
	img image.Image
	err error
}

// Session is the editor state for one template.
type Session struct {
	template *frame.Template
	camera   Camera
	snap     *snap.Engine

	selection string
	gesture   Gesture
	guides    []snap.Guide

	loader     asset.Loader
	background image.Image
	bgState    BackgroundState
	bgErr      error
	bgCh       chan bgResult
}

// SessionOption configures a session at construction.
type SessionOption func(*Session)

// WithSnapEngine replaces the default snap engine, letting callers feed
// in a configured grid size and match threshold.
func WithSnapEngine(e *snap.Engine) SessionOption {
	return func(s *Session) {
		if e != nil {
			s.snap = e
		}
	}
}

// NewSession creates a session over the template. The loader may be nil
// when no background or content images will be resolved.
func NewSession(t *frame.Template, loader asset.Loader, opts ...SessionOption) *Session {
	s := &Session{
		template: t,
		camera:   NewCamera(),
		snap:     snap.NewEngine(),
		loader:   loader,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Template returns the template being edited.
func (s *Session) Template() *frame.Template { return s.template }

// Camera returns the view transform for mutation.
func (s *Session) Camera() *Camera { return &s.camera }

// Selection returns the selected frame id, or "" when nothing is
// selected.
func (s *Session) Selection() string { return s.selection }

// Select sets the selection directly, for non-pointer surfaces like the
// property panel or keyboard navigation. An unknown id clears it.
func (s *Session) Select(id string) {
	if s.template.Frame(id) == nil {
		s.selection = ""
		return
	}
	s.selection = id
}

// Guides returns the transient alignment guides from the active drag.
func (s *Session) Guides() []snap.Guide { return s.guides }

// Dragging reports whether a gesture is in progress.
func (s *Session) Dragging() bool { return s.gesture != nil }

// SetFine toggles the fine snapping grid.
func (s *Session) SetFine(fine bool) { s.snap.SetFine(fine) }

// PointerDown starts a gesture from a screen-space press.
//
// The selected frame's handles are tested first, then frame bodies from
// topmost down. A press on empty space clears the selection. Locked and
// invisible frames are skipped.
func (s *Session) PointerDown(sx, sy float64) {
	p := s.camera.ToDesign(geom.Pt(sx, sy))

	if sel := s.template.Frame(s.selection); sel != nil && interactive(sel) {
		if region, handle := hitHandles(sel, p); region != RegionNone {
			shot := s.snapshotOf(sel, p)
			if region == RegionResize {
				s.gesture = ResizeGesture{Snapshot: shot, Handle: handle}
			} else {
				s.gesture = RotateGesture{Snapshot: shot}
			}
			return
		}
	}

	// Topmost frame is last in the list.
	for i := len(s.template.Frames) - 1; i >= 0; i-- {
		f := s.template.Frames[i]
		if !interactive(f) || !hitBody(f, p) {
			continue
		}
		s.selection = f.ID
		s.gesture = DragGesture{Snapshot: s.snapshotOf(f, p)}
		return
	}

	s.selection = ""
	s.gesture = nil
}

// PointerMove advances the active gesture to a new screen position.
// Without an active gesture it does nothing.
func (s *Session) PointerMove(sx, sy float64) {
	if s.gesture == nil {
		return
	}
	p := s.camera.ToDesign(geom.Pt(sx, sy))

	switch g := s.gesture.(type) {
	case DragGesture:
		s.applyDrag(g, p)
	case ResizeGesture:
		s.applyResize(g, p)
	case RotateGesture:
		s.applyRotate(g, p)
	}
}

// PointerUp ends the gesture. The snapshot is discarded and guides are
// cleared; the frame keeps its final geometry.
func (s *Session) PointerUp() {
	s.gesture = nil
	s.guides = nil
}

// PointerLeave cancels interaction the same way PointerUp ends it.
func (s *Session) PointerLeave() {
	s.PointerUp()
}

func (s *Session) snapshotOf(f *frame.Frame, p geom.Point) Snapshot {
	return Snapshot{
		FrameID:  f.ID,
		Rect:     f.Rect(),
		Rotation: f.Rotation,
		Pointer:  p,
	}
}

func (s *Session) applyDrag(g DragGesture, p geom.Point) {
	f := s.template.Frame(g.FrameID)
	if f == nil {
		s.PointerUp()
		return
	}

	delta := p.Sub(g.Pointer)
	x := g.Rect.X + delta.X
	y := g.Rect.Y + delta.Y

	others := make([]*frame.Frame, 0, len(s.template.Frames)-1)
	for _, other := range s.template.Frames {
		if other.ID != f.ID {
			others = append(others, other)
		}
	}
	res := s.snap.Snap(x, y, f, others)
	s.guides = res.Guides

	_ = s.template.Update(f.ID, frame.Patch{X: &res.X, Y: &res.Y})
}

func (s *Session) applyResize(g ResizeGesture, p geom.Point) {
	f := s.template.Frame(g.FrameID)
	if f == nil {
		s.PointerUp()
		return
	}

	delta := p.Sub(g.Pointer)
	r := resizeRect(g.Rect, g.Handle, delta)
	_ = s.template.Update(f.ID, frame.Patch{X: &r.X, Y: &r.Y, Width: &r.W, Height: &r.H})
}

func (s *Session) applyRotate(g RotateGesture, p geom.Point) {
	f := s.template.Frame(g.FrameID)
	if f == nil {
		s.PointerUp()
		return
	}

	c := g.Rect.Center()
	start := angleDeg(c, g.Pointer)
	now := angleDeg(c, p)
	rot := geom.NormalizeDegrees(g.Rotation + now - start)
	_ = s.template.Update(f.ID, frame.Patch{Rotation: &rot})
}

// === background loading ===

// StartBackgroundLoad kicks off the asynchronous background fetch.
// Safe to call again after the template's background ref changes; the
// previous in-flight result is dropped.
func (s *Session) StartBackgroundLoad(ctx context.Context) {
	ref := s.template.Background
	if ref == "" || s.loader == nil {
		s.background = nil
		s.bgState = BackgroundNone
		s.bgCh = nil
		return
	}

	ch := make(chan bgResult, 1)
	s.bgCh = ch
	s.bgState = BackgroundLoading
	s.bgErr = nil

	go func() {
		img, err := s.loader.Load(ctx, ref)
		ch <- bgResult{img: img, err: err}
	}()
}

// FinishBackgroundLoad folds in a completed load without blocking.
// Returns true when the background state changed, signalling a redraw.
func (s *Session) FinishBackgroundLoad() bool {
	if s.bgCh == nil {
		return false
	}
	select {
	case res := <-s.bgCh:
		s.bgCh = nil
		if res.err != nil {
			s.bgState = BackgroundFailed
			s.bgErr = res.err
			s.background = nil
		} else {
			s.bgState = BackgroundReady
			s.background = res.img
		}
		return true
	default:
		return false
	}
}

// Background returns the loaded image (nil unless ready) and the load
// state.
func (s *Session) Background() (image.Image, BackgroundState) {
	return s.background, s.bgState
}

// BackgroundErr returns the load failure, if any.
func (s *Session) BackgroundErr() error { return s.bgErr }
