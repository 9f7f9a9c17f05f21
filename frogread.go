// Package frogread shows a line of rotating text in a raw terminal and
// reacts to single key presses.
package frogread

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/pondworks-lib/frogread/core"
	"github.com/pondworks-lib/frogread/reader"
)

// openTTY is swapped in tests.
var openTTY = core.OpenTTY

// Config is everything Run needs beyond the terminal files.
type Config struct {
	Tick time.Duration
	Log  core.Logger
}

// Run consumes the seed line from in, takes over the terminal and runs the
// loop until the user quits. When in is not a terminal, as with
// `echo | frogread`, keys are read from the controlling terminal instead.
// The terminal is restored on every exit path, including panics.
func Run(ctx context.Context, in, out *os.File, cfg Config) (err error) {
	log := cfg.Log
	if log == nil {
		log = core.NopLogger()
	}

	br := bufio.NewReader(in)
	model, err := reader.NewModel(br)
	if err != nil {
		return err
	}
	log.Debugf("initial model: %+v", model)

	keys, kr := in, br
	if !core.IsTerminal(in) {
		tty, err := openTTY()
		if err != nil {
			return fmt.Errorf("open terminal: %w", err)
		}
		defer tty.Close()
		log.Debugf("input is redirected, reading keys from %s", tty.Name())
		keys, kr = tty, bufio.NewReader(tty)
	}

	sess := core.NewSession(keys, out, core.WithAltScreen(), core.WithLogger(log))
	defer sess.Guard()
	if err := sess.Enter(); err != nil {
		return fmt.Errorf("enter terminal: %w", err)
	}
	defer func() {
		err = errors.Join(err, sess.Leave())
	}()

	loop := &reader.Loop{
		Screen:  sess,
		Input:   core.NewInput(kr, keys),
		Styles:  reader.NewStyles(core.NewPalette(out)),
		Tick:    cfg.Tick,
		Signals: sess.Signals(),
		Log:     log,
	}
	if err := loop.Run(ctx, &model); err != nil {
		log.Errorf("loop aborted: %v", err)
		return err
	}
	log.Infof("finished in state %s", model.State)
	return nil
}
