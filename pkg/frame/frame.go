// Package frame defines the template data model: placeholder frames, the
// ordered template that owns them, and the outline paths their shapes
// produce. Frames live in a fixed design space; the editor and both render
// paths treat the template's frame list as the sole source of truth.
package frame

import (
	"encoding/json"

	"github.com/framery/framery/pkg/errors"
	"github.com/framery/framery/pkg/geom"
)

// Design space dimensions. Frames are defined on a fixed logical canvas
// regardless of on-screen zoom; the editor carries an explicit design
// space to screen space transform instead of baking these into call sites.
const (
	DesignWidth  = 1200.0
	DesignHeight = 800.0
)

// Geometry limits and defaults.
const (
	MinSize             = 30.0 // floor for both width and height
	DefaultCornerRadius = 10.0
	DefaultPolygonSides = 6
	MinPolygonSides     = 3
	MaxPolygonSides     = 12
)

// Kind distinguishes image placeholders from text placeholders.
type Kind string

// Frame kinds.
const (
	KindImage Kind = "image"
	KindText  Kind = "text"
)

// Valid reports whether k is a known frame kind.
func (k Kind) Valid() bool {
	return k == KindImage || k == KindText
}

// Shape selects the outline used for both clipping and the border stroke.
type Shape string

// Frame shapes.
const (
	ShapeRectangle Shape = "rectangle"
	ShapeRounded   Shape = "rounded-rectangle"
	ShapeCircle    Shape = "circle"
	ShapePolygon   Shape = "polygon"
)

// Valid reports whether s is a known shape.
func (s Shape) Valid() bool {
	switch s {
	case ShapeRectangle, ShapeRounded, ShapeCircle, ShapePolygon:
		return true
	}
	return false
}

// TextAlign controls horizontal placement of wrapped text lines.
type TextAlign string

// Text alignments.
const (
	AlignLeft   TextAlign = "left"
	AlignCenter TextAlign = "center"
	AlignRight  TextAlign = "right"
)

// TextProps holds the text-frame properties. Content is the user-filled
// text; Placeholder is shown in the editor preview while Content is empty.
type TextProps struct {
	FontFamily  string    `json:"fontFamily"`
	FontSize    float64   `json:"fontSize"`
	Color       string    `json:"color"`
	TextAlign   TextAlign `json:"textAlign"`
	Placeholder string    `json:"placeholder,omitempty"`
	Content     string    `json:"content,omitempty"`
}

// ImageSource describes the content of a filled image frame. Raw uploads
// (Adjusted=false) are aspect-fill cropped to the frame at export time.
// Pre-adjusted images come from the external image-adjustment collaborator
// and are drawn verbatim scaled to the frame box; AdjustMeta carries the
// collaborator's opaque transform metadata for re-editing.
type ImageSource struct {
	Ref        string          `json:"ref"`
	Adjusted   bool            `json:"adjusted,omitempty"`
	AdjustMeta json.RawMessage `json:"adjustMeta,omitempty"`
}

// Frame is a positioned, shaped placeholder region on the template.
// Geometry is in design-space units. Rotation is in degrees; rotate
// gestures normalize it into [0,360) while direct numeric edits through
// [Template.Update] leave it as entered.
type Frame struct {
	ID       string  `json:"id"`
	Kind     Kind    `json:"kind"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Width    float64 `json:"width"`
	Height   float64 `json:"height"`
	Rotation float64 `json:"rotation"`
	Shape    Shape   `json:"shape"`

	// CornerRadius is only meaningful for rounded rectangles.
	CornerRadius float64 `json:"cornerRadius,omitempty"`
	// PolygonSides is only meaningful for polygons; always in [3,12].
	PolygonSides int `json:"polygonSides,omitempty"`

	Text  *TextProps   `json:"properties,omitempty"`
	Image *ImageSource `json:"image,omitempty"`

	Visible bool `json:"visible"`
	Locked  bool `json:"locked"`
}

// UnmarshalJSON decodes a frame, defaulting Visible to true when the field
// is absent so that hand-written templates display their frames.
func (f *Frame) UnmarshalJSON(data []byte) error {
	type alias Frame
	aux := struct {
		*alias
		Visible *bool `json:"visible"`
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	f.Visible = aux.Visible == nil || *aux.Visible
	return nil
}

// Rect returns the frame's unrotated bounding rectangle.
func (f *Frame) Rect() geom.Rect {
	return geom.Rect{X: f.X, Y: f.Y, W: f.Width, H: f.Height}
}

// Center returns the frame's center point.
func (f *Frame) Center() geom.Point {
	return f.Rect().Center()
}

// RotatedCorners returns the frame's four corners rotated about its
// center by the frame's rotation.
func (f *Frame) RotatedCorners() [4]geom.Point {
	return geom.RotatedCorners(f.Rect(), f.Rotation)
}

// Clone returns a deep copy of the frame, including text and image
// content. The copy keeps the source ID; callers that need a fresh
// identity assign one afterwards.
func (f *Frame) Clone() *Frame {
	c := *f
	if f.Text != nil {
		t := *f.Text
		c.Text = &t
	}
	if f.Image != nil {
		img := *f.Image
		if f.Image.AdjustMeta != nil {
			img.AdjustMeta = append(json.RawMessage(nil), f.Image.AdjustMeta...)
		}
		c.Image = &img
	}
	return &c
}

// Validate checks the frame's invariants. It is called on deserialized
// templates; live mutation goes through [Template.Update], which clamps
// sizes instead of rejecting them.
func (f *Frame) Validate() error {
	if err := errors.ValidateFrameID(f.ID); err != nil {
		return err
	}
	if !f.Kind.Valid() {
		return errors.New(errors.ErrCodeInvalidInput, "frame %s: unknown kind %q", f.ID, f.Kind)
	}
	if !f.Shape.Valid() {
		return errors.New(errors.ErrCodeInvalidShape, "frame %s: unknown shape %q", f.ID, f.Shape)
	}
	for _, v := range []float64{f.X, f.Y, f.Width, f.Height, f.Rotation, f.CornerRadius} {
		if !geom.IsFinite(v) {
			return errors.New(errors.ErrCodeInvalidGeometry, "frame %s: non-finite geometry", f.ID)
		}
	}
	if f.Width < MinSize || f.Height < MinSize {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"frame %s: size %gx%g below minimum %g", f.ID, f.Width, f.Height, MinSize)
	}
	if f.CornerRadius < 0 {
		return errors.New(errors.ErrCodeInvalidGeometry, "frame %s: negative corner radius", f.ID)
	}
	if f.Shape == ShapePolygon && (f.PolygonSides < MinPolygonSides || f.PolygonSides > MaxPolygonSides) {
		return errors.New(errors.ErrCodeInvalidGeometry,
			"frame %s: polygon sides %d outside [%d,%d]", f.ID, f.PolygonSides, MinPolygonSides, MaxPolygonSides)
	}
	return nil
}

// clampSize applies the size floor in place.
func (f *Frame) clampSize() {
	if f.Width < MinSize {
		f.Width = MinSize
	}
	if f.Height < MinSize {
		f.Height = MinSize
	}
}
