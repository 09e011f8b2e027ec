package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/atikulmunna/fauxlog/internal/model"
)

// Theme holds the lipgloss styles shared by the line renderer and the
// progress animator.
type Theme struct {
	levels map[model.Level]lipgloss.Style
	dim    lipgloss.Style
	border lipgloss.Style
	bar    lipgloss.Style
}

// NewLipglossRenderer returns a renderer bound to w. With plain set, or when
// w is not a terminal, styles render as bare text.
func NewLipglossRenderer(w io.Writer, plain bool) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	if plain {
		r.SetColorProfile(termenv.Ascii)
	}
	return r
}

// NewTheme builds the styles for r.
func NewTheme(r *lipgloss.Renderer) *Theme {
	base := r.NewStyle()
	return &Theme{
		levels: map[model.Level]lipgloss.Style{
			model.LevelInfo:   base.Foreground(lipgloss.Color("42")),  // green
			model.LevelNotice: base.Foreground(lipgloss.Color("39")),  // cyan
			model.LevelWarn:   base.Foreground(lipgloss.Color("220")), // yellow
			model.LevelError:  base.Foreground(lipgloss.Color("196")).Bold(true),
			model.LevelCritical: base.
				Foreground(lipgloss.Color("255")).
				Background(lipgloss.Color("196")).
				Bold(true), // white on red
			model.LevelDebug: base.Foreground(lipgloss.Color("245")),
			model.LevelTrace: base.Foreground(lipgloss.Color("240")).Faint(true),
		},
		dim:    base.Faint(true),
		border: base.Foreground(lipgloss.Color("244")),
		bar:    base.Foreground(lipgloss.Color("45")),
	}
}

// Level renders an already padded level tag.
func (t *Theme) Level(l model.Level, padded string) string {
	if s, ok := t.levels[l]; ok {
		return s.Render(padded)
	}
	return padded
}

func (t *Theme) Dim(s string) string    { return t.dim.Render(s) }
func (t *Theme) Border(s string) string { return t.border.Render(s) }
func (t *Theme) Bar(s string) string    { return t.bar.Render(s) }

// Strip removes ANSI escape sequences, leaving the text a consumer sees.
func Strip(s string) string {
	return ansi.Strip(s)
}
