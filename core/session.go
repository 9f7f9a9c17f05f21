package core

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"sync"
	"syscall"

	"golang.org/x/term"
)

// ErrNotTerminal is returned by Enter when the input is not a terminal.
var ErrNotTerminal = errors.New("input is not a terminal")

const (
	csiAltScreenEnter = "\x1b[?1049h"
	csiAltScreenExit  = "\x1b[?1049l"
	csiCursorShow     = "\x1b[?25h"
	csiSGR0           = "\x1b[0m"
)

// Option configures a Session at construction.
type Option func(*Session)

// WithRenderer uses a custom renderer (useful in tests).
func WithRenderer(r Renderer) Option { return func(s *Session) { s.renderer = r } }

// WithAltScreen switches to the terminal alternate screen while the session runs.
func WithAltScreen() Option { return func(s *Session) { s.altScreen = true } }

// WithLogger routes session diagnostics to l.
func WithLogger(l Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// Session owns the terminal: raw mode, the alternate screen and the cursor.
// It is acquired once with Enter and released exactly once with Leave, on
// whichever exit path runs first.
type Session struct {
	in       *os.File
	out      *os.File
	renderer Renderer
	log      Logger

	altScreen bool
	oldState  *term.State
	restoreVT func()
	entered   bool

	leaveOnce sync.Once
	leaveErr  error

	sigCh chan os.Signal

	// terminal mode hooks; x/term unless replaced in tests
	isTerminal func(fd int) bool
	makeRaw    func(fd int) (*term.State, error)
	restore    func(fd int, st *term.State) error
}

// NewSession creates a session reading keys from in and drawing to out.
func NewSession(in, out *os.File, opts ...Option) *Session {
	s := &Session{
		in:       in,
		out:      out,
		renderer: NewRenderer(out),
		log:      NopLogger(),

		isTerminal: term.IsTerminal,
		makeRaw:    term.MakeRaw,
		restore:    term.Restore,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Enter puts the terminal in raw mode, optionally switches to the alternate
// screen and clears it. On failure everything already changed is undone.
func (s *Session) Enter() error {
	fd := int(s.in.Fd())
	if !s.isTerminal(fd) {
		return ErrNotTerminal
	}
	state, err := s.makeRaw(fd)
	if err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}
	s.oldState = state
	s.entered = true

	restoreVT, err := enableVirtualTerminal(s.out)
	if err != nil {
		return errors.Join(fmt.Errorf("virtual terminal: %w", err), s.Leave())
	}
	s.restoreVT = restoreVT

	if s.altScreen {
		if _, err := io.WriteString(s.out, csiAltScreenEnter); err != nil {
			return errors.Join(fmt.Errorf("enter alt screen: %w", err), s.Leave())
		}
	}
	if err := s.renderer.Clear(); err != nil {
		return errors.Join(fmt.Errorf("clear screen: %w", err), s.Leave())
	}
	s.log.Debugf("terminal entered (alt screen: %t)", s.altScreen)
	return nil
}

// Leave restores the terminal. It is safe to call more than once and
// before Enter; only the first call after Enter does anything.
func (s *Session) Leave() error {
	if !s.entered {
		return nil
	}
	s.leaveOnce.Do(func() {
		var errs []error
		if err := s.renderer.Close(); err != nil {
			errs = append(errs, err)
		}
		if s.altScreen {
			if _, err := io.WriteString(s.out, csiAltScreenExit); err != nil {
				errs = append(errs, fmt.Errorf("leave alt screen: %w", err))
			}
		}
		if s.restoreVT != nil {
			s.restoreVT()
		}
		if err := s.restore(int(s.in.Fd()), s.oldState); err != nil {
			errs = append(errs, fmt.Errorf("restore mode: %w", err))
		}
		s.stopSignals()
		s.leaveErr = errors.Join(errs...)
		s.log.Debugf("terminal restored")
	})
	return s.leaveErr
}

// Guard must be deferred directly: `defer s.Guard()`. On panic it restores
// the terminal, logs the stack and re-panics so the runtime still reports
// the crash.
func (s *Session) Guard() {
	r := recover()
	if r == nil {
		return
	}
	if err := s.Leave(); err != nil {
		EmergencyReset(s.out)
	}
	s.log.Errorf("panic: %v\n%s", r, debug.Stack())
	panic(r)
}

// Signals starts delivery of interrupt, SIGTERM and SIGHUP to the returned
// channel. Delivery stops when the session is left.
func (s *Session) Signals() <-chan os.Signal {
	if s.sigCh == nil {
		s.sigCh = make(chan os.Signal, 1)
		signal.Notify(s.sigCh, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	}
	return s.sigCh
}

func (s *Session) stopSignals() {
	if s.sigCh != nil {
		signal.Stop(s.sigCh)
	}
}

// Draw paints one frame.
func (s *Session) Draw(frame string) error {
	if err := s.renderer.Render(frame); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	return nil
}

// Size reports the drawable area. It is empty when the output is not a
// terminal.
func (s *Session) Size() Frame {
	w, h, err := term.GetSize(int(s.out.Fd()))
	if err != nil {
		return Frame{}
	}
	return Frame{Width: w, Height: h}
}

// EmergencyReset writes the sequences that undo cursor hiding, the
// alternate screen and colour attributes, ignoring errors. It is the last
// resort when Leave itself failed.
func EmergencyReset(w io.Writer) {
	_, _ = io.WriteString(w, csiSGR0+csiCursorShow+csiAltScreenExit)
}
