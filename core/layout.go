package core

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Frame is the drawable area in terminal cells.
type Frame struct {
	Width  int
	Height int
}

// Empty reports whether the frame has no drawable cells.
func (f Frame) Empty() bool { return f.Width <= 0 || f.Height <= 0 }

// Place positions block at the top left of f. Rows wider than the frame
// are cut at the frame width (escape sequences are kept intact) and rows
// past the frame height are dropped. An empty frame returns block
// unchanged.
func Place(block string, f Frame) string {
	if f.Empty() || block == "" {
		return block
	}
	lines := strings.Split(block, "\n")
	if len(lines) > f.Height {
		lines = lines[:f.Height]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, f.Width, "")
	}
	return strings.Join(lines, "\n")
}

// DisplayWidth is the number of cells s occupies, ignoring escape sequences.
func DisplayWidth(s string) int {
	return ansi.StringWidth(s)
}
