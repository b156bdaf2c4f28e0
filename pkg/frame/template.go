package frame

import (
	"github.com/google/uuid"

	"github.com/framery/framery/pkg/errors"
	"github.com/framery/framery/pkg/geom"
)

// Defaults for newly created frames.
const (
	defaultFrameX      = 100.0
	defaultFrameY      = 100.0
	defaultFrameWidth  = 240.0
	defaultFrameHeight = 160.0
	createOffsetStep   = 20.0 // per existing frame, so new frames never stack exactly
	duplicateOffset    = 20.0
)

// Template is an ordered list of frames over one background image
// reference. Array order is stacking order: later entries draw on top.
// The list is the sole source of truth for the editor and both render
// paths; no frame exists outside it.
type Template struct {
	Name       string   `json:"name,omitempty"`
	Background string   `json:"background,omitempty"`
	Frames     []*Frame `json:"frames"`
}

// New creates an empty template.
func New() *Template {
	return &Template{}
}

// Len returns the number of frames.
func (t *Template) Len() int { return len(t.Frames) }

// Frame returns the frame with the given id, or nil if absent.
func (t *Template) Frame(id string) *Frame {
	for _, f := range t.Frames {
		if f.ID == id {
			return f
		}
	}
	return nil
}

// Add creates a frame of the given kind with default geometry and appends
// it to the top of the stack. The default position is offset by the
// current frame count so consecutive creations never overlap exactly.
func (t *Template) Add(kind Kind) *Frame {
	offset := createOffsetStep * float64(len(t.Frames))
	f := &Frame{
		ID:           uuid.NewString(),
		Kind:         kind,
		X:            defaultFrameX + offset,
		Y:            defaultFrameY + offset,
		Width:        defaultFrameWidth,
		Height:       defaultFrameHeight,
		Shape:        ShapeRectangle,
		CornerRadius: DefaultCornerRadius,
		PolygonSides: DefaultPolygonSides,
		Visible:      true,
	}
	if kind == KindText {
		f.Text = &TextProps{
			FontFamily:  "default",
			FontSize:    24,
			Color:       "#333333",
			TextAlign:   AlignCenter,
			Placeholder: "Your text here",
		}
	}
	t.Frames = append(t.Frames, f)
	return f
}

// Delete removes the frame with the given id.
func (t *Template) Delete(id string) error {
	for i, f := range t.Frames {
		if f.ID == id {
			t.Frames = append(t.Frames[:i], t.Frames[i+1:]...)
			return nil
		}
	}
	return errors.New(errors.ErrCodeFrameNotFound, "no frame with id %s", id)
}

// Duplicate clones the frame with the given id, assigns a new id, offsets
// the copy by (+20,+20), and appends it to the top of the stack.
func (t *Template) Duplicate(id string) (*Frame, error) {
	src := t.Frame(id)
	if src == nil {
		return nil, errors.New(errors.ErrCodeFrameNotFound, "no frame with id %s", id)
	}
	c := src.Clone()
	c.ID = uuid.NewString()
	c.X += duplicateOffset
	c.Y += duplicateOffset
	t.Frames = append(t.Frames, c)
	return c, nil
}

// Reorder rearranges the stacking order to match ids, which must be a
// permutation of the current frame ids.
func (t *Template) Reorder(ids []string) error {
	if len(ids) != len(t.Frames) {
		return errors.New(errors.ErrCodeInvalidInput,
			"reorder needs %d ids, got %d", len(t.Frames), len(ids))
	}
	ordered := make([]*Frame, 0, len(ids))
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return errors.New(errors.ErrCodeInvalidInput, "duplicate id %s in reorder", id)
		}
		seen[id] = true
		f := t.Frame(id)
		if f == nil {
			return errors.New(errors.ErrCodeFrameNotFound, "no frame with id %s", id)
		}
		ordered = append(ordered, f)
	}
	t.Frames = ordered
	return nil
}

// Patch is a partial frame mutation. Nil fields are left untouched.
type Patch struct {
	X            *float64
	Y            *float64
	Width        *float64
	Height       *float64
	Rotation     *float64
	Shape        *Shape
	CornerRadius *float64
	PolygonSides *int
	Visible      *bool
	Locked       *bool
	Text         *TextPatch
	Image        *ImageSource
}

// TextPatch is a partial mutation of a text frame's properties.
type TextPatch struct {
	FontFamily  *string
	FontSize    *float64
	Color       *string
	TextAlign   *TextAlign
	Placeholder *string
	Content     *string
}

// Update applies a partial mutation to the frame with the given id. This
// is the validation boundary: non-finite numbers are rejected before they
// can reach the renderer, sizes are clamped to the 30-unit floor, polygon
// sides to [3,12] and corner radius to zero or more. Rotation set here is
// deliberately NOT normalized; only rotate gestures normalize.
func (t *Template) Update(id string, p Patch) error {
	f := t.Frame(id)
	if f == nil {
		return errors.New(errors.ErrCodeFrameNotFound, "no frame with id %s", id)
	}

	for _, v := range []*float64{p.X, p.Y, p.Width, p.Height, p.Rotation, p.CornerRadius} {
		if v != nil && !geom.IsFinite(*v) {
			return errors.New(errors.ErrCodeInvalidGeometry,
				"frame %s: non-finite value in update", id)
		}
	}
	if p.Shape != nil && !p.Shape.Valid() {
		return errors.New(errors.ErrCodeInvalidShape, "frame %s: unknown shape %q", id, *p.Shape)
	}

	if p.X != nil {
		f.X = *p.X
	}
	if p.Y != nil {
		f.Y = *p.Y
	}
	if p.Width != nil {
		f.Width = *p.Width
	}
	if p.Height != nil {
		f.Height = *p.Height
	}
	f.clampSize()
	if p.Rotation != nil {
		f.Rotation = *p.Rotation
	}
	if p.Shape != nil {
		f.Shape = *p.Shape
		if f.Shape == ShapeRounded && f.CornerRadius == 0 {
			f.CornerRadius = DefaultCornerRadius
		}
		if f.Shape == ShapePolygon && f.PolygonSides == 0 {
			f.PolygonSides = DefaultPolygonSides
		}
	}
	if p.CornerRadius != nil {
		f.CornerRadius = max(*p.CornerRadius, 0)
	}
	if p.PolygonSides != nil {
		f.PolygonSides = min(max(*p.PolygonSides, MinPolygonSides), MaxPolygonSides)
	}
	if p.Visible != nil {
		f.Visible = *p.Visible
	}
	if p.Locked != nil {
		f.Locked = *p.Locked
	}
	if p.Text != nil {
		if f.Text == nil {
			f.Text = &TextProps{}
		}
		applyTextPatch(f.Text, p.Text)
	}
	if p.Image != nil {
		img := *p.Image
		f.Image = &img
	}
	return nil
}

func applyTextPatch(tp *TextProps, p *TextPatch) {
	if p.FontFamily != nil {
		tp.FontFamily = *p.FontFamily
	}
	if p.FontSize != nil {
		tp.FontSize = *p.FontSize
	}
	if p.Color != nil {
		tp.Color = *p.Color
	}
	if p.TextAlign != nil {
		tp.TextAlign = *p.TextAlign
	}
	if p.Placeholder != nil {
		tp.Placeholder = *p.Placeholder
	}
	if p.Content != nil {
		tp.Content = *p.Content
	}
}

// Validate checks every frame and the frame id uniqueness invariant.
func (t *Template) Validate() error {
	seen := make(map[string]bool, len(t.Frames))
	for _, f := range t.Frames {
		if err := f.Validate(); err != nil {
			return err
		}
		if seen[f.ID] {
			return errors.New(errors.ErrCodeInvalidTemplate, "duplicate frame id %s", f.ID)
		}
		seen[f.ID] = true
	}
	return nil
}
