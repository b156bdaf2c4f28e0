package cli

import (
	"image"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/framery/framery/pkg/errors"
	"github.com/framery/framery/pkg/export/sink"
	"github.com/framery/framery/pkg/fonts"
	frameio "github.com/framery/framery/pkg/io"
	"github.com/framery/framery/pkg/render"
)

// newPreviewCmd creates the preview command.
func newPreviewCmd(configPath *string) *cobra.Command {
	var (
		output   string
		selected string
		scale    float64
	)

	cmd := &cobra.Command{
		Use:   "preview [template.json]",
		Short: "Render a template as the editor shows it",
		Long: `Render a template to a PNG preview.

Unlike export, preview shows the design-time view: empty frames get a
placeholder fill and every frame draws its outline. Use --select to
highlight one frame with its resize and rotate handles.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if scale <= 0 {
				return errors.New(errors.ErrCodeInvalidInput, "scale must be positive, got %g", scale)
			}
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}

			path := args[0]
			tmpl, err := frameio.ImportJSON(path)
			if err != nil {
				return err
			}

			mode, err := parseRotationMode(cfg.Canvas.RotationMode)
			if err != nil {
				return err
			}

			logger := loggerFromContext(cmd.Context())
			loader, store, err := buildLoader(cfg, path)
			if err != nil {
				return err
			}
			defer store.Close()

			opts := []render.RenderOption{
				render.WithScale(scale),
				render.WithRotationMode(mode),
				render.WithFonts(fonts.NewResolver()),
			}
			if tmpl.Background != "" {
				bg, err := loader.Load(cmd.Context(), tmpl.Background)
				if err != nil {
					logger.Warn("background unavailable", "ref", tmpl.Background, "err", err)
				} else {
					opts = append(opts, render.WithBackground(bg))
				}
			}
			content := map[string]image.Image{}
			for _, f := range tmpl.Frames {
				if f.Image == nil || f.Image.Ref == "" {
					continue
				}
				img, err := loader.Load(cmd.Context(), f.Image.Ref)
				if err != nil {
					logger.Warn("frame content unavailable", "frame", f.ID, "err", err)
					continue
				}
				content[f.ID] = img
			}
			if len(content) > 0 {
				opts = append(opts, render.WithContent(content))
			}
			if selected != "" {
				opts = append(opts, render.WithSelection(selected))
			}

			track := newProgress(logger)
			scene, err := render.Scene(tmpl, opts...)
			if err != nil {
				return err
			}
			data, err := sink.RenderPNG(scene)
			if err != nil {
				return err
			}

			out := output
			if out == "" {
				out = strings.TrimSuffix(path, ".json") + "_preview.png"
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return err
			}
			track.done("preview composited")

			printSuccess("Preview rendered for %s", StyleHighlight.Render(tmpl.Name))
			printFile(out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG path")
	cmd.Flags().StringVar(&selected, "select", "", "frame id to draw with selection handles")
	cmd.Flags().Float64Var(&scale, "scale", 1, "preview resolution multiplier")

	return cmd
}
