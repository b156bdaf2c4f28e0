package asset

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/framery/framery/pkg/cache"
	"github.com/framery/framery/pkg/errors"
)

// writePNG encodes a small solid image to path.
func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
}

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "bg.png"))

	loader := NewFileLoader(dir)
	img, err := loader.Load(context.Background(), "bg.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 4 || got.Dy() != 4 {
		t.Errorf("bounds = %v, want 4x4", got)
	}
}

func TestFileLoaderMissing(t *testing.T) {
	loader := NewFileLoader(t.TempDir())
	_, err := loader.Load(context.Background(), "nope.png")
	if !errors.Is(err, errors.ErrCodeAssetNotFound) {
		t.Errorf("error code = %v, want asset not found", errors.GetCode(err))
	}
}

func TestFileLoaderCorrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.png"), []byte("not an image"), 0o644); err != nil {
		t.Fatal(err)
	}

	loader := NewFileLoader(dir)
	_, err := loader.Load(context.Background(), "bad.png")
	if !errors.Is(err, errors.ErrCodeAssetDecode) {
		t.Errorf("error code = %v, want asset decode", errors.GetCode(err))
	}
}

// recordingLoader counts calls so resolver routing can be observed.
type recordingLoader struct {
	calls int
}

func (l *recordingLoader) Load(ctx context.Context, ref string) (image.Image, error) {
	l.calls++
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func TestResolverRouting(t *testing.T) {
	local := &recordingLoader{}
	remote := &recordingLoader{}
	r := NewResolver(local, remote)
	ctx := context.Background()

	if _, err := r.Load(ctx, "images/bg.png"); err != nil {
		t.Fatalf("local ref: %v", err)
	}
	if _, err := r.Load(ctx, "https://example.com/bg.png"); err != nil {
		t.Fatalf("remote ref: %v", err)
	}
	if local.calls != 1 || remote.calls != 1 {
		t.Errorf("calls local=%d remote=%d, want 1 each", local.calls, remote.calls)
	}
}

func TestResolverRejectsBadRefs(t *testing.T) {
	r := NewResolver(&recordingLoader{}, &recordingLoader{})
	for _, ref := range []string{"", "../escape.png", "ftp://example.com/bg.png"} {
		if _, err := r.Load(context.Background(), ref); err == nil {
			t.Errorf("ref %q: expected validation error", ref)
		}
	}
}

func TestResolverNilLoader(t *testing.T) {
	r := NewResolver(&recordingLoader{}, nil)
	_, err := r.Load(context.Background(), "https://example.com/bg.png")
	if err == nil {
		t.Fatal("expected error for nil remote loader")
	}
}

func TestHTTPLoader(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, "bg.png"))
	pngBytes, err := os.ReadFile(filepath.Join(dir, "bg.png"))
	if err != nil {
		t.Fatal(err)
	}

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(pngBytes)
	}))
	defer srv.Close()

	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	loader := NewHTTPLoader(fc, nil)
	ctx := context.Background()

	img, err := loader.Load(ctx, srv.URL+"/bg.png")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := img.Bounds(); got.Dx() != 4 || got.Dy() != 4 {
		t.Errorf("bounds = %v, want 4x4", got)
	}

	// Second load is served from cache.
	if _, err := loader.Load(ctx, srv.URL+"/bg.png"); err != nil {
		t.Fatalf("cached Load: %v", err)
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("server hits = %d, want 1", n)
	}
}

func TestHTTPLoaderNotFound(t *testing.T) {
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		http.NotFound(w, r)
	}))
	defer srv.Close()

	loader := NewHTTPLoader(cache.NewNullCache(), nil)
	_, err := loader.Load(context.Background(), srv.URL+"/missing.png")
	if !errors.Is(err, errors.ErrCodeAssetNotFound) {
		t.Errorf("error code = %v, want asset not found", errors.GetCode(err))
	}
	if n := hits.Load(); n != 1 {
		t.Errorf("404 retried: %d requests", n)
	}
}

func TestHTTPLoaderBadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>not an image</html>"))
	}))
	defer srv.Close()

	loader := NewHTTPLoader(cache.NewNullCache(), nil)
	_, err := loader.Load(context.Background(), srv.URL+"/page")
	if !errors.Is(err, errors.ErrCodeAssetDecode) {
		t.Errorf("error code = %v, want asset decode", errors.GetCode(err))
	}
}
