package reader

import "github.com/pondworks-lib/frogread/core"

// KeyMessage maps a key press to a message: space pauses, q quits and
// every other key reads.
func KeyMessage(k core.KeyMsg) Message {
	switch {
	case k.Type == core.KeySpace:
		return Pause
	case k.Type == core.KeyRune && k.Rune == 'q' && !k.Alt:
		return Quit
	default:
		return Read
	}
}
