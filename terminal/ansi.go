package terminal

// Pre-allocated ANSI sequences
var (
	csiClear      = []byte("\x1b[2J\x1b[H")
	csiHome       = []byte("\x1b[H")
	csiEraseLine  = []byte("\x1b[K")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")
	csiRIS        = []byte("\x1bc") // Reset to Initial State (emergency)

	// Row separator, OPOST is off in raw mode so the CR is explicit
	crlf = []byte("\r\n")
)

// cursorSeq returns the visibility sequence for the given state
func cursorSeq(visible bool) []byte {
	if visible {
		return csiCursorShow
	}
	return csiCursorHide
}
