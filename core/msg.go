package core

// KeyType identifies the decoded key.
type KeyType int

const (
	KeyRune KeyType = iota
	KeySpace
	KeyEnter
	KeyTab
	KeyBackspace
	KeyEsc
	KeyCtrlC
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPgUp
	KeyPgDn
	KeyDelete
)

var keyNames = map[KeyType]string{
	KeyRune:      "rune",
	KeySpace:     "space",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeyEsc:       "esc",
	KeyCtrlC:     "ctrl+c",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyRight:     "right",
	KeyLeft:      "left",
	KeyHome:      "home",
	KeyEnd:       "end",
	KeyPgUp:      "pgup",
	KeyPgDn:      "pgdown",
	KeyDelete:    "delete",
}

func (k KeyType) String() string {
	if s, ok := keyNames[k]; ok {
		return s
	}
	return "unknown"
}

// KeyMsg is one decoded key press.
type KeyMsg struct {
	Type   KeyType
	Rune   rune
	String string // raw bytes, e.g. "\r", "\x03"
	Alt    bool
	Ctrl   bool
}

// Name returns a human readable name, the rune itself for printable keys.
func (k KeyMsg) Name() string {
	name := k.Type.String()
	if k.Type == KeyRune {
		name = string(k.Rune)
	}
	if k.Alt {
		return "alt+" + name
	}
	return name
}
