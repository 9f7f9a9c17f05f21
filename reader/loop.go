package reader

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/pondworks-lib/frogread/core"
)

// DefaultTick is how long each iteration waits for a key. It is also the
// auto-advance rate.
const DefaultTick = 250 * time.Millisecond

// Screen is where frames go. *core.Session implements it.
type Screen interface {
	Draw(frame string) error
	Size() core.Frame
}

// Source yields at most one key per poll. *core.Input implements it.
type Source interface {
	Poll(timeout time.Duration) (core.KeyMsg, bool, error)
}

// Loop drives Model through draw, poll, update and auto-advance until the
// model is Done.
type Loop struct {
	Screen  Screen
	Input   Source
	Styles  Styles
	Tick    time.Duration
	Signals <-chan os.Signal
	Pick    Picker
	Log     core.Logger
}

func (l *Loop) defaults() {
	if l.Tick <= 0 {
		l.Tick = DefaultTick
	}
	if l.Pick == nil {
		l.Pick = RandomPick
	}
	if l.Log == nil {
		l.Log = core.NopLogger()
	}
}

// Run blocks until m is Done, the context is cancelled, a signal arrives,
// or drawing or input fails. A nil error means a normal exit.
func (l *Loop) Run(ctx context.Context, m *Model) error {
	l.defaults()

	for m.State != Done {
		if err := l.Screen.Draw(View(*m, l.Screen.Size(), l.Styles)); err != nil {
			return fmt.Errorf("draw: %w", err)
		}

		key, ok, err := l.Input.Poll(l.Tick)
		if err != nil {
			return fmt.Errorf("poll input: %w", err)
		}

		if ok {
			msg := KeyMessage(key)
			if msg == Quit {
				l.Log.Infof("q pressed")
			}
			l.Log.Debugf("key %s -> %s", key.Name(), msg)
			Drain(m, msg, l.Pick)
		}

		select {
		case sig := <-l.Signals:
			l.Log.Warnf("received %s, finishing", sig)
			Drain(m, Finished, l.Pick)
		case <-ctx.Done():
			l.Log.Warnf("context done: %v", ctx.Err())
			Drain(m, Finished, l.Pick)
		default:
		}

		if !m.Paused && m.State != Done {
			UpdateWith(m, Read, l.Pick)
		}
	}
	return nil
}
