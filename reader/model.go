// Package reader is the frogread application: a Model mutated only by
// Update, rendered by View, and driven by Loop.
package reader

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// RunState is the coarse lifecycle stage of the loop.
type RunState int

const (
	Running RunState = iota
	Paused
	Done
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("RunState(%d)", int(s))
	}
}

// Model is the complete state shown on screen. It is rendered as
// Leading + Highlight + Follow, with Highlight emphasized.
type Model struct {
	Leading   string
	Highlight string
	Follow    string
	Paused    bool
	State     RunState
}

// DefaultModel returns the initial state.
func DefaultModel() Model {
	return Model{
		Leading:   "ma",
		Highlight: "i",
		Follow:    "n",
		State:     Running,
	}
}

// NewModel consumes one line from r, then returns DefaultModel. The line
// is read so a piped seed does not leak into key input; its content is
// not used.
func NewModel(r *bufio.Reader) (Model, error) {
	if _, err := r.ReadString('\n'); err != nil && !errors.Is(err, io.EOF) {
		return Model{}, fmt.Errorf("read seed line: %w", err)
	}
	return DefaultModel(), nil
}
