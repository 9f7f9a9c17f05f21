package core

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode"
	"unicode/utf8"
)

// ErrInputClosed is returned by Poll once the input stream has ended.
var ErrInputClosed = errors.New("input closed")

// Input decodes key presses from a terminal with a bounded wait.
// It never starts a goroutine: Poll blocks the caller for at most the
// given timeout.
type Input struct {
	r    *bufio.Reader
	wait func(time.Duration) (bool, error)
}

// NewInput reads keys from r, which must buffer f. The same reader can be
// used beforehand to consume startup lines without losing keystrokes.
func NewInput(r *bufio.Reader, f *os.File) *Input {
	fd := f.Fd()
	return &Input{
		r:    r,
		wait: func(d time.Duration) (bool, error) { return waitReadable(fd, d) },
	}
}

// Poll waits up to timeout for a key press. It returns ok=false when
// nothing arrived or when the bytes read did not form a key.
func (i *Input) Poll(timeout time.Duration) (KeyMsg, bool, error) {
	if i.r.Buffered() == 0 {
		ready, err := i.wait(timeout)
		if err != nil {
			return KeyMsg{}, false, fmt.Errorf("wait for input: %w", err)
		}
		if !ready {
			return KeyMsg{}, false, nil
		}
	}
	return i.readKey()
}

// readKey parses one key from the buffered reader.
// It recognizes common ASCII keys, arrows, Home/End, PgUp/PgDn, Delete,
// Enter, Backspace, Tab, Space, ESC, Ctrl-C, and Alt+<key>.
func (i *Input) readKey() (KeyMsg, bool, error) {
	b, err := i.r.ReadByte()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return KeyMsg{}, false, ErrInputClosed
		}
		return KeyMsg{}, false, fmt.Errorf("read input: %w", err)
	}

	switch b {
	case 3: // ^C
		return KeyMsg{Type: KeyCtrlC, String: "\x03", Ctrl: true}, true, nil
	case '\r', '\n':
		return KeyMsg{Type: KeyEnter, String: "\r"}, true, nil
	case 8, 127: // Backspace (ASCII/DEL)
		return KeyMsg{Type: KeyBackspace, String: string(b)}, true, nil
	case 9:
		return KeyMsg{Type: KeyTab, String: "\t"}, true, nil
	case ' ':
		return KeyMsg{Type: KeySpace, Rune: ' ', String: " "}, true, nil
	case 27: // ESC / CSI / Alt+key
		return i.readEscape(), true, nil
	}

	// other control chars are dropped
	if b < 0x20 {
		return KeyMsg{}, false, nil
	}

	buf := []byte{b}
	for i.r.Buffered() > 0 && !utf8.FullRune(buf) {
		nb, _ := i.r.ReadByte()
		buf = append(buf, nb)
	}
	if ru, _ := utf8.DecodeRune(buf); ru != utf8.RuneError && !unicode.IsControl(ru) {
		return KeyMsg{Type: KeyRune, Rune: ru, String: string(ru)}, true, nil
	}
	return KeyMsg{}, false, nil
}

// readEscape reads after an initial ESC. It only looks at bytes already
// buffered, so a lone ESC never blocks.
func (i *Input) readEscape() KeyMsg {
	if i.r.Buffered() == 0 {
		return KeyMsg{Type: KeyEsc, String: "\x1b"}
	}

	nb, _ := i.r.ReadByte()
	if nb == '[' {
		return i.readCSI()
	}

	// Alt+key
	buf := []byte{nb}
	for i.r.Buffered() > 0 && !utf8.FullRune(buf) {
		b, _ := i.r.ReadByte()
		buf = append(buf, b)
	}
	if ru, _ := utf8.DecodeRune(buf); ru != utf8.RuneError && !unicode.IsControl(ru) {
		return KeyMsg{Type: KeyRune, Rune: ru, String: string(ru), Alt: true}
	}
	return KeyMsg{Type: KeyEsc, String: "\x1b"}
}

// readCSI parses ESC [ <params> <final>. Modifier parameters such as
// "1;5" are accepted and ignored.
func (i *Input) readCSI() KeyMsg {
	params := []byte{}
	for {
		if i.r.Buffered() == 0 {
			return KeyMsg{Type: KeyEsc, String: "\x1b"}
		}
		b, _ := i.r.ReadByte()
		switch b {
		case 'A':
			return KeyMsg{Type: KeyUp, String: "\x1b[A"}
		case 'B':
			return KeyMsg{Type: KeyDown, String: "\x1b[B"}
		case 'C':
			return KeyMsg{Type: KeyRight, String: "\x1b[C"}
		case 'D':
			return KeyMsg{Type: KeyLeft, String: "\x1b[D"}
		case 'H':
			return KeyMsg{Type: KeyHome, String: "\x1b[H"}
		case 'F':
			return KeyMsg{Type: KeyEnd, String: "\x1b[F"}
		case '~':
			seq := "\x1b[" + string(params) + "~"
			switch string(params) {
			case "3":
				return KeyMsg{Type: KeyDelete, String: seq}
			case "5":
				return KeyMsg{Type: KeyPgUp, String: seq}
			case "6":
				return KeyMsg{Type: KeyPgDn, String: seq}
			default:
				return KeyMsg{Type: KeyEsc, String: seq}
			}
		default:
			if (b >= '0' && b <= '9') || b == ';' {
				params = append(params, b)
				continue
			}
			return KeyMsg{Type: KeyEsc, String: "\x1b[" + string(params) + string(b)}
		}
	}
}
