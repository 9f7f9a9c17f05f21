//go:build windows

package core

import (
	"os"

	"golang.org/x/sys/windows"
)

// enableVirtualTerminal turns on ANSI processing for out and returns a
// func that puts the console mode back.
func enableVirtualTerminal(out *os.File) (func(), error) {
	h := windows.Handle(out.Fd())
	if h == windows.InvalidHandle {
		return func() {}, nil
	}
	var mode uint32
	if err := windows.GetConsoleMode(h, &mode); err != nil {
		// not a console (redirected output); nothing to enable
		return func() {}, nil
	}
	if err := windows.SetConsoleMode(h, mode|windows.ENABLE_VIRTUAL_TERMINAL_PROCESSING); err != nil {
		return nil, err
	}
	return func() { _ = windows.SetConsoleMode(h, mode) }, nil
}
