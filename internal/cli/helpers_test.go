package cli

import (
	"path/filepath"
	"testing"

	"github.com/framery/framery/pkg/cache"
	"github.com/framery/framery/pkg/config"
	"github.com/framery/framery/pkg/render"
	"github.com/framery/framery/pkg/watermark"
)

func TestParseRotationMode(t *testing.T) {
	tests := []struct {
		in      string
		want    render.RotationMode
		wantErr bool
	}{
		{"", render.RotationContentUpright, false},
		{"upright", render.RotationContentUpright, false},
		{"rotated", render.RotationContentRotated, false},
		{"sideways", render.RotationContentUpright, true},
	}
	for _, tt := range tests {
		got, err := parseRotationMode(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseRotationMode(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("parseRotationMode(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseTier(t *testing.T) {
	tests := []struct {
		in      string
		want    watermark.Tier
		wantErr bool
	}{
		{"", watermark.TierPro, false},
		{"pro", watermark.TierPro, false},
		{"free", watermark.TierFree, false},
		{"platinum", watermark.TierPro, true},
	}
	for _, tt := range tests {
		got, err := parseTier(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseTier(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if err == nil && got != tt.want {
			t.Errorf("parseTier(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestBuildLoaderCacheSelection(t *testing.T) {
	cfg := config.Default()
	cfg.Assets.CacheDir = ""
	_, store, err := buildLoader(cfg, "templates/card.json")
	if err != nil {
		t.Fatalf("buildLoader: %v", err)
	}
	if _, ok := store.(*cache.NullCache); !ok {
		t.Errorf("empty cache dir should select NullCache, got %T", store)
	}

	cfg.Assets.CacheDir = filepath.Join(t.TempDir(), "assets")
	_, store, err = buildLoader(cfg, "templates/card.json")
	if err != nil {
		t.Fatalf("buildLoader: %v", err)
	}
	defer store.Close()
	if _, ok := store.(*cache.FileCache); !ok {
		t.Errorf("cache dir should select FileCache, got %T", store)
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{2048, "2.0 KB"},
		{3 << 20, "3.0 MB"},
	}
	for _, tt := range tests {
		if got := formatBytes(tt.in); got != tt.want {
			t.Errorf("formatBytes(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
