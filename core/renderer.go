package core

import (
	"fmt"
	"io"
	"strings"
)

// Renderer paints frames. Calls are serialized by the Session.
type Renderer interface {
	// Clear hides the cursor, clears the screen and moves home.
	Clear() error
	// Render paints the given frame.
	Render(frame string) error
	// Close shows the cursor again.
	Close() error
}

// NewRenderer creates an ANSI renderer writing to out. The first frame
// after a clear is painted whole; later frames repaint changed rows only.
func NewRenderer(out io.Writer) Renderer {
	return &ansiRenderer{out: out}
}

type ansiRenderer struct {
	out     io.Writer
	last    string
	lines   []string
	cleared bool
}

func (r *ansiRenderer) Clear() error {
	r.cleared = true
	r.last = ""
	r.lines = nil
	return r.write("\x1b[?25l\x1b[2J\x1b[H")
}

func (r *ansiRenderer) Render(s string) error {
	if !r.cleared {
		if err := r.Clear(); err != nil {
			return err
		}
	}

	frame := normalizeNewlines(s)
	if frame == r.last {
		return nil
	}

	var b strings.Builder
	newLines := splitKeep(frame)

	if len(r.lines) == 0 {
		b.WriteString("\x1b[H")
		b.WriteString(strings.Join(newLines, "\r\n"))
		b.WriteString("\x1b[0J")
	} else {
		rows := max(len(r.lines), len(newLines))
		for i := 0; i < rows; i++ {
			if i >= len(newLines) {
				moveCursor(&b, i+1, 1)
				b.WriteString("\x1b[2K")
				continue
			}
			if i >= len(r.lines) || r.lines[i] != newLines[i] {
				moveCursor(&b, i+1, 1)
				b.WriteString(newLines[i])
				b.WriteString("\x1b[0K")
			}
		}
	}

	if err := r.write(b.String()); err != nil {
		return err
	}
	r.last = frame
	r.lines = newLines
	return nil
}

func (r *ansiRenderer) Close() error {
	return r.write("\x1b[?25h")
}

func (r *ansiRenderer) write(s string) error {
	if _, err := io.WriteString(r.out, s); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// normalizeNewlines converts CRLF/CR to LF so frames diff consistently.
func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// splitKeep splits on '\n' keeping empty rows, so index i is terminal row i+1.
func splitKeep(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// moveCursor positions the cursor to row, col (1-based).
func moveCursor(w io.Writer, row, col int) {
	fmt.Fprintf(w, "\x1b[%d;%dH", row, col)
}
