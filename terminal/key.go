package terminal

import "strconv"

// Ctrl returns the byte a terminal sends for Ctrl+k in raw mode
func Ctrl(k byte) byte {
	return k & 0x1f
}

// Control bytes commonly checked by frame loops
var (
	KeyCtrlC = Ctrl('c')
	KeyCtrlQ = Ctrl('q')
)

// Names for control bytes without a Ctrl+letter spelling
var controlNames = map[byte]string{
	0x00: "NUL",
	0x08: "Backspace",
	0x09: "Tab",
	0x0d: "Enter",
	0x1b: "Escape",
	0x7f: "Backspace",
}

// KeyName describes an input byte: "Ctrl+Q" for control bytes, the
// character itself when printable, a hex code otherwise
func KeyName(c byte) string {
	if name, ok := controlNames[c]; ok {
		return name
	}
	switch {
	case c < 0x20:
		return "Ctrl+" + string(rune(c|0x40))
	case c < 0x7f:
		return string(rune(c))
	default:
		return "0x" + strconv.FormatUint(uint64(c), 16)
	}
}
