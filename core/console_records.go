package core

import "encoding/binary"

const consoleKeyEvent = 0x0001

// consoleRecord mirrors the Windows INPUT_RECORD layout: a 16-bit event
// type, two bytes of padding and a 16-byte event union.
type consoleRecord struct {
	EventType uint16
	_         uint16
	Event     [16]byte
}

// keyDown reports whether r is a key press that yields a character. Only
// those records produce bytes on a console read.
func (r consoleRecord) keyDown() bool {
	if r.EventType != consoleKeyEvent {
		return false
	}
	down := binary.LittleEndian.Uint32(r.Event[0:4]) != 0
	char := binary.LittleEndian.Uint16(r.Event[10:12])
	return down && char != 0
}

// pendingKey scans queued console records. It returns how many leading
// records carry no character and can be dropped, and whether a key press
// follows them.
func pendingKey(recs []consoleRecord) (drop int, ready bool) {
	for i, r := range recs {
		if r.keyDown() {
			return i, true
		}
	}
	return len(recs), false
}
