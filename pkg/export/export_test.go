package export

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/framery/framery/pkg/errors"
	"github.com/framery/framery/pkg/frame"
	"github.com/framery/framery/pkg/watermark"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// mapLoader serves fixed images by ref.
type mapLoader map[string]image.Image

func (l mapLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	img, ok := l[ref]
	if !ok {
		return nil, errors.New(errors.ErrCodeAssetNotFound, "no asset %s", ref)
	}
	return img, nil
}

func TestFillCropRect(t *testing.T) {
	tests := []struct {
		name         string
		imgW, imgH   int
		targetAspect float64
		want         image.Rectangle
	}{
		{"wide to square crops sides", 400, 200, 1, image.Rect(100, 0, 300, 200)},
		{"tall to square crops top and bottom", 200, 400, 1, image.Rect(0, 100, 200, 300)},
		{"matching aspect untouched", 300, 200, 1.5, image.Rect(0, 0, 300, 200)},
		{"wide to 2:1", 600, 200, 2, image.Rect(100, 0, 500, 200)},
		{"degenerate input untouched", 0, 200, 1, image.Rect(0, 0, 0, 200)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FillCropRect(tt.imgW, tt.imgH, tt.targetAspect)
			if got != tt.want {
				t.Errorf("FillCropRect = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExportPNG(t *testing.T) {
	tpl := frame.New()
	f := tpl.Add(frame.KindImage)
	f.X, f.Y, f.Width, f.Height = 100, 100, 200, 100
	f.Image = &frame.ImageSource{Ref: "photo.png"}

	loader := mapLoader{"photo.png": solid(400, 400, color.RGBA{255, 0, 0, 255})}
	e := New(loader, nil, nil)

	data, err := e.Export(context.Background(), tpl, Options{Format: FormatPNG})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}

	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("decode output: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 2400 || b.Dy() != 1600 {
		t.Errorf("output %dx%d, want default 2x scale 2400x1600", b.Dx(), b.Dy())
	}

	// Content pixel inside the frame at 2x.
	r, g, _, _ := img.At(400, 300).RGBA()
	if r>>8 != 255 || g>>8 != 0 {
		t.Errorf("frame interior not filled with content: r=%d g=%d", r>>8, g>>8)
	}
}

func TestExportAutocrop(t *testing.T) {
	tpl := frame.New()
	tpl.Background = "bg.png"

	// 3:1 background letterboxes to 1200x400 inside the canvas.
	loader := mapLoader{"bg.png": solid(1200, 400, color.RGBA{0, 0, 255, 255})}
	e := New(loader, nil, nil)

	data, err := e.Export(context.Background(), tpl, Options{
		Format:   FormatPNG,
		Scale:    1,
		Autocrop: true,
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	b := img.Bounds()
	if b.Dx() != 1200 || b.Dy() != 400 {
		t.Errorf("autocropped output %dx%d, want 1200x400", b.Dx(), b.Dy())
	}
}

func TestExportPDF(t *testing.T) {
	tpl := frame.New()
	e := New(nil, nil, nil)

	data, err := e.Export(context.Background(), tpl, Options{Format: FormatPDF, Scale: 1})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Error("output does not start with the PDF header")
	}
}

func TestExportInvalidFormat(t *testing.T) {
	e := New(nil, nil, nil)
	_, err := e.Export(context.Background(), frame.New(), Options{Format: "gif"})
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %v, want invalid format", errors.GetCode(err))
	}
}

func TestExportAbortsOnMissingAsset(t *testing.T) {
	tpl := frame.New()
	f := tpl.Add(frame.KindImage)
	f.Image = &frame.ImageSource{Ref: "gone.png"}

	e := New(mapLoader{}, nil, nil)
	data, err := e.Export(context.Background(), tpl, Options{Format: FormatPNG})
	if err == nil {
		t.Fatal("expected export failure")
	}
	if data != nil {
		t.Error("failed export must not return a partial artifact")
	}
}

func TestExportAbortsOnMissingBackground(t *testing.T) {
	tpl := frame.New()
	tpl.Background = "gone.png"

	e := New(mapLoader{}, nil, nil)
	if _, err := e.Export(context.Background(), tpl, Options{Format: FormatPNG}); err == nil {
		t.Fatal("expected export failure")
	}
}

// recordingStamper notes the tier it was asked to stamp.
type recordingStamper struct {
	tier watermark.Tier
}

func (s *recordingStamper) Stamp(img image.Image, tier watermark.Tier) (image.Image, error) {
	s.tier = tier
	return img, nil
}

func TestExportAppliesWatermarkTier(t *testing.T) {
	stamper := &recordingStamper{}
	e := New(nil, nil, stamper)

	_, err := e.Export(context.Background(), frame.New(), Options{
		Format: FormatPNG,
		Scale:  1,
		Tier:   watermark.TierFree,
	})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if stamper.tier != watermark.TierFree {
		t.Errorf("stamper saw tier %q, want free", stamper.tier)
	}
}

func TestExportAdjustedImageVerbatim(t *testing.T) {
	tpl := frame.New()
	f := tpl.Add(frame.KindImage)
	f.X, f.Y, f.Width, f.Height = 0, 0, 100, 100

	// Left half red, right half green; pre-adjusted so no crop applies.
	src := image.NewRGBA(image.Rect(0, 0, 200, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if x < 100 {
				src.SetRGBA(x, y, color.RGBA{255, 0, 0, 255})
			} else {
				src.SetRGBA(x, y, color.RGBA{0, 255, 0, 255})
			}
		}
	}
	f.Image = &frame.ImageSource{Ref: "adj.png", Adjusted: true}

	e := New(mapLoader{"adj.png": src}, nil, nil)
	data, err := e.Export(context.Background(), tpl, Options{Format: FormatPNG, Scale: 1})
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}

	// Verbatim scaling squeezes both halves into the frame: the right
	// quarter of the frame must be green, which an aspect-fill crop
	// would have cut away entirely.
	_, g, _, _ := img.At(90, 50).RGBA()
	if g>>8 < 200 {
		t.Errorf("right side of frame not green (g=%d); adjusted image was cropped", g>>8)
	}
}
