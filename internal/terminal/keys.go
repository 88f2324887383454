// Package terminal implements the raw-mode terminal used by the directory picker.
package terminal

import "bytes"

// Key is a logical key event. Printable keys carry their rune value;
// navigation keys use the constants below, which lie outside the Unicode range.
type Key rune

const (
	KeyUnknown Key = -1
	KeyEnter   Key = '\n'
	KeyCtrlC   Key = 0x03
	KeyEscape  Key = 0x1b
)

const (
	KeyUp Key = 0x110000 + iota
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyDelete
)

var escapeSeqs = map[string]Key{
	"[A":  KeyUp,
	"[B":  KeyDown,
	"[C":  KeyRight,
	"[D":  KeyLeft,
	"OA":  KeyUp,
	"OB":  KeyDown,
	"OC":  KeyRight,
	"OD":  KeyLeft,
	"[H":  KeyHome,
	"[F":  KeyEnd,
	"OH":  KeyHome,
	"OF":  KeyEnd,
	"[1~": KeyHome,
	"[4~": KeyEnd,
	"[3~": KeyDelete,
	"[5~": KeyPageUp,
	"[6~": KeyPageDown,
}

// Decode maps the bytes of a single terminal read to a key.
// Only the first key in buf is decoded; unrecognised escape sequences
// yield KeyUnknown.
func Decode(buf []byte) Key {
	if len(buf) == 0 {
		return KeyUnknown
	}
	switch b := buf[0]; {
	case b == '\r' || b == '\n':
		return KeyEnter
	case b == 0x1b:
		return decodeEscape(buf[1:])
	case b < 0x80:
		return Key(b)
	}
	r := bytes.Runes(buf)
	if len(r) == 0 {
		return KeyUnknown
	}
	return Key(r[0])
}

func decodeEscape(rest []byte) Key {
	if len(rest) == 0 {
		return KeyEscape
	}
	// Longest known sequence is three bytes.
	for n := min(len(rest), 3); n >= 2; n-- {
		if k, ok := escapeSeqs[string(rest[:n])]; ok {
			return k
		}
	}
	return KeyUnknown
}

// String returns a short name for k, used in debug logs.
func (k Key) String() string {
	switch k {
	case KeyUnknown:
		return "unknown"
	case KeyEnter:
		return "enter"
	case KeyCtrlC:
		return "ctrl-c"
	case KeyEscape:
		return "esc"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyPageUp:
		return "pgup"
	case KeyPageDown:
		return "pgdn"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyDelete:
		return "delete"
	}
	return string(rune(k))
}
