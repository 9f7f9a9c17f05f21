package reader

import (
	"github.com/pondworks-lib/frogread/core"
)

// Styles holds the two styles a frame uses.
type Styles struct {
	palette *core.Palette
}

// NewStyles binds the highlight colour to p's profile.
func NewStyles(p *core.Palette) Styles { return Styles{palette: p} }

func (s Styles) highlight(text string) string {
	if s.palette == nil || text == "" {
		return text
	}
	return s.palette.Fg(core.ColorRed).Render(text)
}

// View renders m as one line placed at the top left of f. Leading and
// Follow are written verbatim; Highlight is red.
func View(m Model, f core.Frame, st Styles) string {
	line := m.Leading + st.highlight(m.Highlight) + m.Follow
	return core.Place(line, f)
}
