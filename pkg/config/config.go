// Package config loads tool settings from an optional framery.toml.
// Every field has a working default; a missing file is not an error.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/framery/framery/pkg/errors"
	"github.com/framery/framery/pkg/export"
	"github.com/framery/framery/pkg/snap"
	"github.com/framery/framery/pkg/watermark"
)

// DefaultPath is where Load looks when no path is given.
const DefaultPath = "framery.toml"

// Config is the full tool configuration.
type Config struct {
	Canvas CanvasConfig `toml:"canvas"`
	Snap   SnapConfig   `toml:"snap"`
	Export ExportConfig `toml:"export"`
	Assets AssetsConfig `toml:"assets"`
}

// CanvasConfig controls preview rendering.
type CanvasConfig struct {
	// RotationMode is "upright" (default) or "rotated".
	RotationMode string `toml:"rotation_mode"`
}

// SnapConfig controls the snap engine.
type SnapConfig struct {
	GridSize  float64 `toml:"grid_size"`
	Threshold float64 `toml:"threshold"`
}

// Engine builds a snap engine from the configured grid and threshold.
func (c SnapConfig) Engine() *snap.Engine {
	return &snap.Engine{GridSize: c.GridSize, Threshold: c.Threshold}
}

// ExportConfig controls the export pipeline.
type ExportConfig struct {
	Scale         float64 `toml:"scale"`
	Format        string  `toml:"format"`
	Autocrop      bool    `toml:"autocrop"`
	WatermarkTier string  `toml:"watermark_tier"`
	WatermarkText string  `toml:"watermark_text"`
}

// AssetsConfig controls asset resolution.
type AssetsConfig struct {
	// BaseDir anchors relative asset refs. Empty means the template
	// file's directory.
	BaseDir string `toml:"base_dir"`
	// CacheDir holds fetched remote assets. Empty disables caching.
	CacheDir string `toml:"cache_dir"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Canvas: CanvasConfig{RotationMode: "upright"},
		Snap: SnapConfig{
			GridSize:  snap.DefaultGridSize,
			Threshold: snap.DefaultThreshold,
		},
		Export: ExportConfig{
			Scale:         export.DefaultScale,
			Format:        string(export.FormatPNG),
			Autocrop:      true,
			WatermarkTier: string(watermark.TierPro),
			WatermarkText: "framery",
		},
		Assets: AssetsConfig{CacheDir: defaultCacheDir()},
	}
}

// Load reads the TOML file at path, applying defaults for absent fields.
// An empty path tries DefaultPath; a missing file returns Default().
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Snap.GridSize <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "snap.grid_size must be positive")
	}
	if c.Snap.Threshold < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "snap.threshold cannot be negative")
	}
	if c.Export.Scale <= 0 {
		return errors.New(errors.ErrCodeInvalidInput, "export.scale must be positive")
	}
	if f := export.Format(c.Export.Format); !f.Valid() {
		return errors.New(errors.ErrCodeInvalidFormat, "export.format %q is not png or pdf", c.Export.Format)
	}
	switch c.Canvas.RotationMode {
	case "upright", "rotated":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "canvas.rotation_mode %q is not upright or rotated", c.Canvas.RotationMode)
	}
	return nil
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "framery")
}
