package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/framery/framery/pkg/config"
	"github.com/framery/framery/pkg/export"
	frameio "github.com/framery/framery/pkg/io"
)

// newExportCmd creates the export command.
func newExportCmd(configPath *string) *cobra.Command {
	var (
		format   string
		scale    float64
		output   string
		tier     string
		autocrop bool
	)

	cmd := &cobra.Command{
		Use:   "export [template.json]",
		Short: "Export a template to PNG or PDF",
		Long: `Export a template to a print-ready artifact.

The export command loads a template, resolves its background and frame
content assets, composites the final scene, and encodes it as PNG or PDF.
Editing chrome and placeholder fills are never included in exports.

Output defaults to the template name with the chosen format's extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Export.Format
			}
			if scale == 0 {
				scale = cfg.Export.Scale
			}
			if tier == "" {
				tier = cfg.Export.WatermarkTier
			}
			if !cmd.Flags().Changed("autocrop") {
				autocrop = cfg.Export.Autocrop
			}
			return runExport(cmd, args[0], cfg, exportParams{
				format:   format,
				scale:    scale,
				output:   output,
				tier:     tier,
				autocrop: autocrop,
			})
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format: png (default), pdf")
	cmd.Flags().Float64Var(&scale, "scale", 0, "resolution multiplier (default 2)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file path")
	cmd.Flags().StringVar(&tier, "watermark-tier", "", "watermark tier: free, pro (default)")
	cmd.Flags().BoolVar(&autocrop, "autocrop", true, "crop output to the background's visible area")

	return cmd
}

type exportParams struct {
	format   string
	scale    float64
	output   string
	tier     string
	autocrop bool
}

func runExport(cmd *cobra.Command, path string, cfg config.Config, p exportParams) error {
	logger := loggerFromContext(cmd.Context())
	start := time.Now()

	mode, err := parseRotationMode(cfg.Canvas.RotationMode)
	if err != nil {
		return err
	}
	watermarkTier, err := parseTier(p.tier)
	if err != nil {
		return err
	}

	tmpl, err := frameio.ImportJSON(path)
	if err != nil {
		return err
	}
	logger.Debug("template loaded", "name", tmpl.Name, "frames", len(tmpl.Frames))

	exporter, store, err := buildExporter(cfg, path)
	if err != nil {
		return err
	}
	defer store.Close()

	sp := newSpinner(fmt.Sprintf("Exporting %s...", tmpl.Name))
	sp.Start()
	data, err := exporter.Export(cmd.Context(), tmpl, export.Options{
		Format:       export.Format(p.format),
		Scale:        p.scale,
		RotationMode: mode,
		Tier:         watermarkTier,
		Autocrop:     p.autocrop,
	})
	if err != nil {
		sp.StopWithError("Export failed")
		return err
	}
	sp.Stop()

	out := p.output
	if out == "" {
		out = strings.TrimSuffix(path, ".json") + "." + p.format
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		return err
	}

	printSuccess("Exported %s in %s", StyleHighlight.Render(tmpl.Name), time.Since(start).Round(time.Millisecond))
	printFile(out)
	return nil
}
