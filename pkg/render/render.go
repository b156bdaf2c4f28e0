// Package render composites a template into a raster scene.
//
// The same compositor serves the editor preview and the export pipeline:
// preview renders placeholders and interaction chrome, export renders at
// a scale multiplier with real content and no chrome. Scene order is
// fixed: canvas clear, background, frames in list order, selection
// chrome, then transient snap guides on top.
package render

import (
	"image"
	"math"

	"github.com/fogleman/gg"

	"github.com/framery/framery/pkg/fonts"
	"github.com/framery/framery/pkg/frame"
	"github.com/framery/framery/pkg/snap"
)

// RotationMode selects how a rotated frame treats its content.
type RotationMode int

const (
	// RotationContentUpright rotates only the clip window; content stays
	// axis-aligned and the rotated outline reveals a different part of it.
	RotationContentUpright RotationMode = iota

	// RotationContentRotated rotates the content with the frame.
	RotationContentRotated
)

const (
	canvasColor      = "#ffffff"
	placeholderColor = "#e5e7eb"
	borderColor      = "#9ca3af"
	selectionColor   = "#3b82f6"
	handleFillColor  = "#ffffff"
	guideColor       = "#ec4899"
)

type RenderOption func(*renderer)

type renderer struct {
	scale     float64
	mode      RotationMode
	fonts     *fonts.Resolver
	bg        image.Image
	selection string
	guides    []snap.Guide
	content   map[string]image.Image
	final     bool
}

// WithScale sets the output scale multiplier (default 1).
func WithScale(s float64) RenderOption { return func(r *renderer) { r.scale = s } }

// WithRotationMode sets the rotation strategy for frame content.
func WithRotationMode(m RotationMode) RenderOption { return func(r *renderer) { r.mode = m } }

// WithFonts supplies the font resolver for text frames.
func WithFonts(f *fonts.Resolver) RenderOption { return func(r *renderer) { r.fonts = f } }

// WithBackground supplies the loaded background image. Nil keeps the
// neutral placeholder fill.
func WithBackground(img image.Image) RenderOption { return func(r *renderer) { r.bg = img } }

// WithSelection draws selection chrome (highlight plus handles) for the
// given frame id.
func WithSelection(id string) RenderOption { return func(r *renderer) { r.selection = id } }

// WithGuides draws transient alignment guides on top of the scene.
func WithGuides(g []snap.Guide) RenderOption { return func(r *renderer) { r.guides = g } }

// WithContent supplies resolved content images by frame id. Each image
// must already be sized to its frame's scaled pixel box. Frames without
// an entry render the placeholder fill.
func WithContent(imgs map[string]image.Image) RenderOption {
	return func(r *renderer) { r.content = imgs }
}

// WithFinal drops editor chrome for export output: no frame borders, no
// placeholder fills, and text frames draw filled-in content only.
func WithFinal() RenderOption { return func(r *renderer) { r.final = true } }

func newRenderer(opts ...RenderOption) renderer {
	r := renderer{scale: 1, mode: RotationContentUpright}
	for _, opt := range opts {
		opt(&r)
	}
	if r.fonts == nil {
		r.fonts = fonts.NewResolver()
	}
	return r
}

// Scene composites the template into an image.
func Scene(t *frame.Template, opts ...RenderOption) (image.Image, error) {
	r := newRenderer(opts...)

	w := int(math.Round(frame.DesignWidth * r.scale))
	h := int(math.Round(frame.DesignHeight * r.scale))
	dc := gg.NewContext(w, h)

	dc.SetHexColor(canvasColor)
	dc.Clear()

	if r.bg != nil {
		drawBackground(dc, r.bg, float64(w), float64(h))
	} else if !r.final {
		dc.SetHexColor(placeholderColor)
		dc.DrawRectangle(0, 0, float64(w), float64(h))
		dc.Fill()
	}

	for _, f := range t.Frames {
		if !f.Visible {
			continue
		}
		if err := drawFrame(dc, f, &r); err != nil {
			return nil, err
		}
	}

	if sel := t.Frame(r.selection); sel != nil && sel.Visible {
		drawSelection(dc, sel, r.scale)
	}

	drawGuides(dc, r.guides, r.scale, float64(w), float64(h))

	return dc.Image(), nil
}

// drawBackground paints the background aspect-fit centered, letterboxed
// against the canvas color.
func drawBackground(dc *gg.Context, bg image.Image, w, h float64) {
	b := bg.Bounds()
	fit := FitRect(float64(b.Dx()), float64(b.Dy()), w, h)

	dc.Push()
	dc.Translate(fit.X, fit.Y)
	dc.Scale(fit.W/float64(b.Dx()), fit.H/float64(b.Dy()))
	dc.DrawImage(bg, 0, 0)
	dc.Pop()
}

func drawGuides(dc *gg.Context, guides []snap.Guide, scale, w, h float64) {
	if len(guides) == 0 {
		return
	}
	dc.SetHexColor(guideColor)
	dc.SetLineWidth(1)
	for _, g := range guides {
		pos := g.Position * scale
		if g.Orientation == snap.Vertical {
			dc.DrawLine(pos, 0, pos, h)
		} else {
			dc.DrawLine(0, pos, w, pos)
		}
		dc.Stroke()
	}
}
