package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles used by text output. Styles are bound to a renderer
// for the destination writer, so nothing is coloured when it is not a
// terminal.
type Theme struct {
	Language lipgloss.Style
	Name     lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Warning  lipgloss.Style
}

func NewTheme(w io.Writer, plain bool) Theme {
	r := lipgloss.NewRenderer(w)
	if plain {
		s := r.NewStyle()
		return Theme{Language: s, Name: s, Muted: s, Error: s, Warning: s}
	}
	return Theme{
		Language: r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Name:     r.NewStyle(),
		Muted:    r.NewStyle().Faint(true),
		Error:    r.NewStyle().Foreground(lipgloss.Color("9")),
		Warning:  r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}
