package cli

import (
	"path/filepath"

	"github.com/framery/framery/pkg/asset"
	"github.com/framery/framery/pkg/cache"
	"github.com/framery/framery/pkg/config"
	"github.com/framery/framery/pkg/errors"
	"github.com/framery/framery/pkg/export"
	"github.com/framery/framery/pkg/fonts"
	"github.com/framery/framery/pkg/render"
	"github.com/framery/framery/pkg/watermark"
)

// loadConfig resolves the --config flag. An empty path falls back to
// framery.toml in the working directory, and then to defaults.
func loadConfig(path string) (config.Config, error) {
	return config.Load(path)
}

// buildLoader assembles the asset resolver for a template. Relative refs
// resolve against cfg.Assets.BaseDir, or the template's own directory
// when the config leaves it empty.
func buildLoader(cfg config.Config, templatePath string) (asset.Loader, cache.Cache, error) {
	base := cfg.Assets.BaseDir
	if base == "" {
		base = filepath.Dir(templatePath)
	}

	var store cache.Cache = cache.NewNullCache()
	if cfg.Assets.CacheDir != "" {
		fc, err := cache.NewFileCache(cfg.Assets.CacheDir)
		if err != nil {
			return nil, nil, err
		}
		store = fc
	}

	local := asset.NewFileLoader(base)
	remote := asset.NewHTTPLoader(store, nil)
	return asset.NewResolver(local, remote), store, nil
}

// buildExporter wires the full export pipeline from config.
func buildExporter(cfg config.Config, templatePath string) (*export.Exporter, cache.Cache, error) {
	loader, store, err := buildLoader(cfg, templatePath)
	if err != nil {
		return nil, nil, err
	}
	stamper := watermark.NewDiagonalStamper(cfg.Export.WatermarkText)
	return export.New(loader, fonts.NewResolver(), stamper), store, nil
}

// parseRotationMode maps a config or flag string to a render mode.
func parseRotationMode(s string) (render.RotationMode, error) {
	switch s {
	case "", "upright":
		return render.RotationContentUpright, nil
	case "rotated":
		return render.RotationContentRotated, nil
	default:
		return render.RotationContentUpright, errors.New(errors.ErrCodeInvalidInput,
			"unknown rotation mode %q (want upright or rotated)", s)
	}
}

// parseTier maps a tier string to a watermark tier.
func parseTier(s string) (watermark.Tier, error) {
	switch s {
	case "", "pro":
		return watermark.TierPro, nil
	case "free":
		return watermark.TierFree, nil
	default:
		return watermark.TierPro, errors.New(errors.ErrCodeInvalidInput,
			"unknown watermark tier %q (want free or pro)", s)
	}
}
