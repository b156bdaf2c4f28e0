package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/framery/framery/pkg/frame"
	frameio "github.com/framery/framery/pkg/io"
)

// newInspectCmd creates the inspect command.
func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect [template.json]",
		Short: "Show a template's frames and geometry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tmpl, err := frameio.ImportJSON(args[0])
			if err != nil {
				return err
			}

			name := tmpl.Name
			if name == "" {
				name = "(unnamed)"
			}
			fmt.Println(StyleTitle.Render("Template: " + name))
			printKeyValue("Background", orDash(tmpl.Background))
			printKeyValue("Frames", strconv.Itoa(tmpl.Len()))
			printNewline()

			for i, f := range tmpl.Frames {
				fmt.Printf("%s %s\n", StyleDim.Render(fmt.Sprintf("%2d.", i+1)), StyleHighlight.Render(f.ID))
				printDetail("kind: %s  shape: %s", f.Kind, f.Shape)
				printDetail("rect: %.4gx%.4g at (%.4g, %.4g)", f.Width, f.Height, f.X, f.Y)
				if f.Rotation != 0 {
					printDetail("rotation: %.4g°", f.Rotation)
				}
				if desc := contentSummary(f); desc != "" {
					printDetail("content: %s", desc)
				}
				if f.Locked {
					printDetail("locked")
				}
				if !f.Visible {
					printDetail("hidden")
				}
			}
			return nil
		},
	}
}

func contentSummary(f *frame.Frame) string {
	switch {
	case f.Image != nil && f.Image.Ref != "":
		return "image " + f.Image.Ref
	case f.Text != nil && f.Text.Content != "":
		return "text " + strconv.Quote(f.Text.Content)
	case f.Text != nil && f.Text.Placeholder != "":
		return "placeholder " + strconv.Quote(f.Text.Placeholder)
	default:
		return ""
	}
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
