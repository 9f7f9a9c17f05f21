//go:build windows

package core

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                          = windows.NewLazySystemDLL("kernel32.dll")
	procGetNumberOfConsoleInputEvents = kernel32.NewProc("GetNumberOfConsoleInputEvents")
	procPeekConsoleInputW             = kernel32.NewProc("PeekConsoleInputW")
	procReadConsoleInputW             = kernel32.NewProc("ReadConsoleInputW")
)

// waitReadable blocks until a key press is queued on the console handle fd
// or timeout elapses. Key-up, focus, mouse and resize records also signal
// the handle; they are read off and discarded so the next read cannot
// block waiting for a character.
func waitReadable(fd uintptr, timeout time.Duration) (bool, error) {
	h := windows.Handle(fd)
	var mode uint32
	if windows.GetConsoleMode(h, &mode) != nil {
		// not a console (pipe or file): the handle state is enough
		return waitHandle(h, timeout)
	}

	deadline := time.Now().Add(timeout)
	for {
		ready, err := waitHandle(h, time.Until(deadline))
		if err != nil || !ready {
			return false, err
		}
		recs, err := peekConsole(h)
		if err != nil {
			return false, err
		}
		drop, ok := pendingKey(recs)
		if drop > 0 {
			if err := discardConsole(h, drop); err != nil {
				return false, err
			}
		}
		if ok {
			return true, nil
		}
		if !time.Now().Before(deadline) {
			return false, nil
		}
	}
}

func waitHandle(h windows.Handle, d time.Duration) (bool, error) {
	if d < 0 {
		d = 0
	}
	ev, err := windows.WaitForSingleObject(h, uint32(d.Milliseconds()))
	if err != nil {
		return false, err
	}
	return ev == windows.WAIT_OBJECT_0, nil
}

func peekConsole(h windows.Handle) ([]consoleRecord, error) {
	var n uint32
	if r, _, err := procGetNumberOfConsoleInputEvents.Call(uintptr(h), uintptr(unsafe.Pointer(&n))); r == 0 {
		return nil, err
	}
	if n == 0 {
		return nil, nil
	}
	recs := make([]consoleRecord, n)
	var got uint32
	if r, _, err := procPeekConsoleInputW.Call(uintptr(h), uintptr(unsafe.Pointer(&recs[0])), uintptr(n), uintptr(unsafe.Pointer(&got))); r == 0 {
		return nil, err
	}
	return recs[:got], nil
}

func discardConsole(h windows.Handle, n int) error {
	recs := make([]consoleRecord, n)
	var got uint32
	if r, _, err := procReadConsoleInputW.Call(uintptr(h), uintptr(unsafe.Pointer(&recs[0])), uintptr(n), uintptr(unsafe.Pointer(&got))); r == 0 {
		return err
	}
	return nil
}
