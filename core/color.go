package core

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
)

// Base 16-colour palette entries in use.
var (
	ColorRed    = lipgloss.Color("1")
	ColorGreen  = lipgloss.Color("2")
	ColorYellow = lipgloss.Color("3")
)

// Palette builds styles bound to one output's colour profile.
type Palette struct {
	r *lipgloss.Renderer
}

// NewPalette detects the colour profile of out (honouring NO_COLOR and
// CLICOLOR_FORCE).
func NewPalette(out io.Writer) *Palette {
	return &Palette{r: lipgloss.NewRenderer(out, termenv.WithColorCache(true))}
}

// NewPaletteWithProfile skips detection. Tests use termenv.ANSI to get
// stable escape codes regardless of the environment.
func NewPaletteWithProfile(p termenv.Profile) *Palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(p)
	return &Palette{r: r}
}

// Plain is the default style.
func (p *Palette) Plain() lipgloss.Style { return p.r.NewStyle() }

// Fg is the default style with a foreground colour.
func (p *Palette) Fg(c lipgloss.TerminalColor) lipgloss.Style {
	return p.r.NewStyle().Foreground(c)
}

// StripANSI removes escape sequences from s.
func StripANSI(s string) string {
	return ansi.Strip(s)
}
