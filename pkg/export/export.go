// Package export runs the full compositing pipeline: real content at an
// output scale, autocrop to the background's rendered bounds, optional
// watermark, and encoding to PNG or PDF. Any failure aborts the export;
// no partial artifact is produced.
package export

import (
	"context"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"github.com/framery/framery/pkg/asset"
	"github.com/framery/framery/pkg/errors"
	"github.com/framery/framery/pkg/export/sink"
	"github.com/framery/framery/pkg/fonts"
	"github.com/framery/framery/pkg/frame"
	"github.com/framery/framery/pkg/render"
	"github.com/framery/framery/pkg/watermark"
)

// DefaultScale is the export resolution multiplier.
const DefaultScale = 2.0

// Format selects the encoded output.
type Format string

const (
	FormatPNG Format = "png"
	FormatPDF Format = "pdf"
)

// Valid reports whether the format is one of the supported encodings.
func (f Format) Valid() bool {
	return f == FormatPNG || f == FormatPDF
}

// Options configure a single export run.
type Options struct {
	Format       Format
	Scale        float64 // 0 means DefaultScale
	RotationMode render.RotationMode
	Tier         watermark.Tier
	Autocrop     bool
}

// Exporter composites templates into deliverable artifacts.
type Exporter struct {
	assets  asset.Loader
	fonts   *fonts.Resolver
	stamper watermark.Stamper
}

// New creates an exporter. assets resolves background and content refs;
// stamper may be nil to skip watermarking entirely.
func New(assets asset.Loader, fonts *fonts.Resolver, stamper watermark.Stamper) *Exporter {
	return &Exporter{assets: assets, fonts: fonts, stamper: stamper}
}

// Export renders the template with real content and encodes it. The
// whole pipeline is all-or-nothing: an unreachable asset or a failed
// encode returns an error and no bytes.
func (e *Exporter) Export(ctx context.Context, t *frame.Template, opts Options) ([]byte, error) {
	if !opts.Format.Valid() {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported export format %q", opts.Format)
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = DefaultScale
	}

	bg, err := e.loadBackground(ctx, t)
	if err != nil {
		return nil, err
	}
	content, err := e.loadContent(ctx, t, scale)
	if err != nil {
		return nil, err
	}

	scene, err := render.Scene(t,
		render.WithScale(scale),
		render.WithRotationMode(opts.RotationMode),
		render.WithFonts(e.fonts),
		render.WithBackground(bg),
		render.WithContent(content),
		render.WithFinal(),
	)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "compositing failed")
	}

	if opts.Autocrop && bg != nil {
		scene = autocrop(scene, bg, scale)
	}

	if e.stamper != nil {
		scene, err = e.stamper.Stamp(scene, opts.Tier)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "watermark failed")
		}
	}

	switch opts.Format {
	case FormatPDF:
		return sink.RenderPDF(scene)
	default:
		return sink.RenderPNG(scene)
	}
}

func (e *Exporter) loadBackground(ctx context.Context, t *frame.Template) (image.Image, error) {
	if t.Background == "" {
		return nil, nil
	}
	if e.assets == nil {
		return nil, errors.New(errors.ErrCodeExportFailed, "no asset loader for background %q", t.Background)
	}
	img, err := e.assets.Load(ctx, t.Background)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "background load failed")
	}
	return img, nil
}

// loadContent resolves every visible image frame's content into a bitmap
// already sized to the frame's scaled pixel box.
func (e *Exporter) loadContent(ctx context.Context, t *frame.Template, scale float64) (map[string]image.Image, error) {
	content := make(map[string]image.Image)
	for _, f := range t.Frames {
		if !f.Visible || f.Kind != frame.KindImage || f.Image == nil || f.Image.Ref == "" {
			continue
		}
		if e.assets == nil {
			return nil, errors.New(errors.ErrCodeExportFailed, "no asset loader for frame %s", f.ID)
		}
		img, err := e.assets.Load(ctx, f.Image.Ref)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeExportFailed, err, "content load failed for frame %s", f.ID)
		}
		content[f.ID] = fitContent(img, f, scale)
	}
	return content, nil
}

// fitContent sizes a source image to the frame's scaled pixel box.
// Pre-adjusted sources are taken verbatim and only scaled; raw uploads
// get a centered aspect-fill crop first.
func fitContent(img image.Image, f *frame.Frame, scale float64) image.Image {
	w := int(math.Round(f.Width * scale))
	h := int(math.Round(f.Height * scale))

	if f.Image.Adjusted {
		return imaging.Resize(img, w, h, imaging.Lanczos)
	}

	b := img.Bounds()
	crop := FillCropRect(b.Dx(), b.Dy(), f.Width/f.Height)
	return imaging.Resize(imaging.Crop(img, crop), w, h, imaging.Lanczos)
}

// autocrop trims the composite to the background's rendered bounds,
// removing the letterbox margins. The crop rect comes from the same
// aspect-fit math the compositor used, so no pixel scanning is needed.
func autocrop(scene image.Image, bg image.Image, scale float64) image.Image {
	b := bg.Bounds()
	fit := render.FitRect(float64(b.Dx()), float64(b.Dy()), frame.DesignWidth, frame.DesignHeight)
	rect := image.Rect(
		int(math.Round(fit.X*scale)),
		int(math.Round(fit.Y*scale)),
		int(math.Round((fit.X+fit.W)*scale)),
		int(math.Round((fit.Y+fit.H)*scale)),
	)
	return imaging.Crop(scene, rect)
}
