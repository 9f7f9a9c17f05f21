package core

import (
	"os"

	"golang.org/x/term"
)

// IsTerminal reports whether f is connected to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// OpenTTY opens the controlling terminal for reading keys. It is used when
// standard input is redirected.
func OpenTTY() (*os.File, error) {
	return os.OpenFile(ttyPath, os.O_RDWR, 0)
}
