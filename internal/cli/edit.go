package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/framery/framery/pkg/frame"
	frameio "github.com/framery/framery/pkg/io"
	"github.com/framery/framery/pkg/snap"
)

// Editor styles
var (
	editSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	editNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	editDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// newEditCmd creates the edit command.
func newEditCmd(configPath *string) *cobra.Command {
	var step float64

	cmd := &cobra.Command{
		Use:   "edit [template.json]",
		Short: "Edit a template's frames interactively",
		Long: `Edit a template in an interactive terminal session.

Frames are listed in stacking order. Arrow keys nudge the selected frame
by the step size, shift+arrows resize it, and r/R rotate it. Moves snap
to the configured grid and to other frames' edges. Changes are written
back to the file only on save.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			tmpl, err := frameio.ImportJSON(args[0])
			if err != nil {
				return err
			}
			m := newEditorModel(args[0], tmpl, step, cfg.Snap.Engine())
			final, err := tea.NewProgram(m).Run()
			if err != nil {
				return err
			}
			if em, ok := final.(editorModel); ok && em.dirty {
				printWarning("Unsaved changes discarded")
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&step, "step", 10, "nudge distance in design units")

	return cmd
}

// editorModel is the bubbletea model for frame editing.
type editorModel struct {
	path   string
	tmpl   *frame.Template
	snap   *snap.Engine
	cursor int
	step   float64
	dirty  bool
	status string
}

func newEditorModel(path string, tmpl *frame.Template, step float64, engine *snap.Engine) editorModel {
	if step <= 0 {
		step = 10
	}
	if engine == nil {
		engine = snap.NewEngine()
	}
	return editorModel{path: path, tmpl: tmpl, step: step, snap: engine}
}

func (m editorModel) Init() tea.Cmd {
	return nil
}

func (m editorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "tab", "j":
		if m.tmpl.Len() > 0 {
			m.cursor = (m.cursor + 1) % m.tmpl.Len()
		}
	case "k":
		if m.tmpl.Len() > 0 {
			m.cursor = (m.cursor + m.tmpl.Len() - 1) % m.tmpl.Len()
		}
	case "left":
		m.nudge(-m.step, 0)
	case "right":
		m.nudge(m.step, 0)
	case "up":
		m.nudge(0, -m.step)
	case "down":
		m.nudge(0, m.step)
	case "shift+left":
		m.resize(-m.step, 0)
	case "shift+right":
		m.resize(m.step, 0)
	case "shift+up":
		m.resize(0, -m.step)
	case "shift+down":
		m.resize(0, m.step)
	case "r":
		m.rotate(15)
	case "R":
		m.rotate(-15)
	case "d":
		m.duplicate()
	case "x":
		m.remove()
	case "s":
		m.save()
	}
	return m, nil
}

func (m *editorModel) current() *frame.Frame {
	if m.cursor < 0 || m.cursor >= m.tmpl.Len() {
		return nil
	}
	return m.tmpl.Frames[m.cursor]
}

func (m *editorModel) apply(p frame.Patch) {
	f := m.current()
	if f == nil {
		return
	}
	if err := m.tmpl.Update(f.ID, p); err != nil {
		m.status = err.Error()
		return
	}
	m.dirty = true
	m.status = ""
}

func (m *editorModel) nudge(dx, dy float64) {
	f := m.current()
	if f == nil {
		return
	}
	others := make([]*frame.Frame, 0, m.tmpl.Len()-1)
	for _, other := range m.tmpl.Frames {
		if other.ID != f.ID {
			others = append(others, other)
		}
	}
	res := m.snap.Snap(f.X+dx, f.Y+dy, f, others)
	m.apply(frame.Patch{X: &res.X, Y: &res.Y})
}

func (m *editorModel) resize(dw, dh float64) {
	f := m.current()
	if f == nil {
		return
	}
	w := max(f.Width+dw, frame.MinSize)
	h := max(f.Height+dh, frame.MinSize)
	m.apply(frame.Patch{Width: &w, Height: &h})
}

func (m *editorModel) rotate(deg float64) {
	f := m.current()
	if f == nil {
		return
	}
	r := f.Rotation + deg
	m.apply(frame.Patch{Rotation: &r})
}

func (m *editorModel) duplicate() {
	f := m.current()
	if f == nil {
		return
	}
	c, err := m.tmpl.Duplicate(f.ID)
	if err != nil {
		m.status = err.Error()
		return
	}
	m.cursor = m.tmpl.Len() - 1
	m.dirty = true
	m.status = "duplicated as " + c.ID
}

func (m *editorModel) remove() {
	f := m.current()
	if f == nil {
		return
	}
	if err := m.tmpl.Delete(f.ID); err != nil {
		m.status = err.Error()
		return
	}
	if m.cursor >= m.tmpl.Len() && m.cursor > 0 {
		m.cursor--
	}
	m.dirty = true
	m.status = "deleted " + f.ID
}

func (m *editorModel) save() {
	if err := frameio.ExportJSON(m.tmpl, m.path); err != nil {
		m.status = err.Error()
		return
	}
	m.dirty = false
	m.status = "saved " + m.path
}

func (m editorModel) View() string {
	var b strings.Builder

	title := m.tmpl.Name
	if title == "" {
		title = m.path
	}
	b.WriteString(StyleTitle.Render("Editing " + title))
	if m.dirty {
		b.WriteString(StyleWarning.Render(" *"))
	}
	b.WriteString("\n")
	b.WriteString(editDimStyle.Render("tab next  arrows move  shift+arrows resize  r/R rotate  d dup  x del  s save  q quit"))
	b.WriteString("\n\n")

	if m.tmpl.Len() == 0 {
		b.WriteString(editDimStyle.Render("no frames"))
		b.WriteString("\n")
	}
	for i, f := range m.tmpl.Frames {
		line := fmt.Sprintf("%s %s  %.4gx%.4g at (%.4g, %.4g)  rot %.4g",
			string(f.Kind), f.ID, f.Width, f.Height, f.X, f.Y, f.Rotation)
		if i == m.cursor {
			b.WriteString(editSelectedStyle.Render("▸ " + line))
		} else {
			b.WriteString(editNormalStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(editDimStyle.Render(m.status))
		b.WriteString("\n")
	}
	return b.String()
}
