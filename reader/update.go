package reader

import (
	"math/rand/v2"

	"github.com/pondworks-lib/frogread/core"
)

// Message is a unit of intent fed to Update. The zero value None means
// "no message".
type Message int

const (
	None Message = iota
	Read
	Pause
	Quit
	Reset
	Finished
)

func (m Message) String() string {
	switch m {
	case None:
		return "none"
	case Read:
		return "read"
	case Pause:
		return "pause"
	case Quit:
		return "quit"
	case Reset:
		return "reset"
	case Finished:
		return "finished"
	default:
		return "unknown"
	}
}

// Candidates are the strings Read rotates through Leading.
var Candidates = []string{"HELLO", "Something", "Else", "were getting the hang"}

// Picker chooses one of the candidates.
type Picker func([]string) string

// RandomPick chooses uniformly at random.
func RandomPick(c []string) string {
	if len(c) == 0 {
		return ""
	}
	return c[rand.IntN(len(c))]
}

// Update applies msg to m with RandomPick and returns the follow-up
// message, or None.
func Update(m *Model, msg Message) Message {
	return UpdateWith(m, msg, RandomPick)
}

// UpdateWith is Update with an explicit Picker. Read only ever replaces
// Leading; Highlight and Follow keep their values. Reset does not revive
// a Done model.
func UpdateWith(m *Model, msg Message, pick Picker) Message {
	switch msg {
	case Pause:
		m.Paused = !m.Paused
		if m.Paused {
			m.State = Paused
		} else {
			m.State = Running
		}
	case Read:
		m.Paused = false
		if len(Candidates) > 0 {
			m.Leading = pick(Candidates)
		}
	case Quit, Finished:
		m.State = Done
	case Reset:
		if m.State != Done {
			*m = DefaultModel()
		}
	}
	return None
}

// Drain applies msg and every follow-up it yields. It returns how many
// messages were applied.
func Drain(m *Model, msg Message, pick Picker) int {
	return core.Drain(msg, func(next Message) Message {
		return UpdateWith(m, next, pick)
	})
}
