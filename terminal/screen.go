package terminal

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Screen is a buffered console: output is collected in a row grid sized to
// the terminal and written out on Flush. A Screen is not safe for concurrent
// use; one goroutine drives the whole frame loop.
type Screen struct {
	backend Backend
	writer  *bufio.Writer
	log     *slog.Logger

	buf           *rowBuffer
	width         int
	cursorVisible bool

	initialized bool
	finalized   bool
}

// NewScreen creates a Screen on the given backend. A nil logger discards.
func NewScreen(b Backend, logger *slog.Logger) *Screen {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Screen{
		backend:       b,
		log:           logger,
		cursorVisible: true,
	}
	s.writer = bufio.NewWriter(writerFunc(s.writeRaw))
	return s
}

// Init detects the terminal size, enters raw mode and allocates the rows.
// Size failures wrap ErrSizeDetection and leave the terminal untouched.
func (s *Screen) Init() error {
	if s.initialized && !s.finalized {
		return nil
	}

	w, h, err := s.backend.Size()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSizeDetection, err)
	}
	if w <= 0 || h <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrSizeDetection, w, h)
	}

	if err := s.backend.Init(); err != nil {
		return fmt.Errorf("raw mode: %w", err)
	}

	s.buf = newRowBuffer(w, h)
	s.width = w
	s.cursorVisible = true
	s.initialized = true
	s.finalized = false

	s.log.Debug("screen initialized", "width", w, "height", h)
	return nil
}

// Cleanup clears the screen, shows the cursor, frees the rows and restores
// the terminal mode. Safe to call multiple times, and a no-op when Init did
// not succeed.
func (s *Screen) Cleanup() {
	if !s.initialized || s.finalized {
		return
	}

	s.writer.Write(csiClear)
	s.setCursor(true)
	s.writer.Flush()

	s.buf.release()
	s.width = 0

	if err := s.backend.Fini(); err != nil {
		s.log.Debug("terminal restore failed", "error", err)
	}

	s.finalized = true
}

// Close runs Cleanup and releases the terminal device when the backend
// holds one open (the tcell backend does). Such a backend refuses a later
// Init.
func (s *Screen) Close() error {
	s.Cleanup()
	if c, ok := s.backend.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// Flush writes the buffered frame to the terminal and empties the buffer.
// The cursor is hidden while rows are drawn and then set back to its
// previous visibility.
func (s *Screen) Flush() {
	if !s.live() {
		return
	}

	w := s.writer
	w.Write(csiHome)

	visible := s.cursorVisible
	s.setCursor(false)

	s.buf.flush(w)

	s.setCursor(visible)
	w.Flush()
}

// Printf formats its arguments and appends the text at the virtual cursor.
// It returns the length of the formatted text, even if part of it did not
// fit, and 0 once the frame is full.
func (s *Screen) Printf(format string, args ...any) int {
	if !s.live() {
		return 0
	}
	return s.buf.put(fmt.Sprintf(format, args...))
}

// Print appends its operands formatted as by fmt.Sprint
func (s *Screen) Print(args ...any) int {
	if !s.live() {
		return 0
	}
	return s.buf.put(fmt.Sprint(args...))
}

// Write appends p at the virtual cursor. It always reports len(p) so the
// Screen can sit behind fmt.Fprintf; bytes past the frame are dropped.
func (s *Screen) Write(p []byte) (int, error) {
	if s.live() {
		s.buf.put(string(p))
	}
	return len(p), nil
}

// SetCursorVisible shows or hides the terminal cursor
func (s *Screen) SetCursorVisible(visible bool) {
	if !s.live() {
		return
	}
	s.setCursor(visible)
	s.writer.Flush()
}

// CursorVisible reports the last visibility sent to the terminal
func (s *Screen) CursorVisible() bool {
	return s.cursorVisible
}

// ReadChar returns one input byte, or 0 if none arrived within the read
// timeout
func (s *Screen) ReadChar() byte {
	if !s.live() {
		return 0
	}
	c, err := s.backend.ReadByte()
	if err != nil {
		if err != ErrNoInput {
			s.log.Debug("read failed", "error", err)
		}
		return 0
	}
	return c
}

// Height returns the row count captured by Init
func (s *Screen) Height() int {
	if s.buf == nil {
		return 0
	}
	return s.buf.height()
}

// Width returns the column count captured by Init
func (s *Screen) Width() int {
	return s.width
}

func (s *Screen) live() bool {
	return s.initialized && !s.finalized
}

// setCursor queues the visibility sequence and records the state
func (s *Screen) setCursor(visible bool) {
	s.writer.Write(cursorSeq(visible))
	s.cursorVisible = visible
}

// writeRaw hands buffered bytes to the backend. Terminal writes are best
// effort: a failure is logged and the bytes are reported as consumed so the
// buffered writer does not latch the error.
func (s *Screen) writeRaw(p []byte) (int, error) {
	if _, err := s.backend.Write(p); err != nil {
		s.log.Debug("terminal write failed", "error", err, "bytes", len(p))
	}
	return len(p), nil
}

type writerFunc func(p []byte) (int, error)

func (f writerFunc) Write(p []byte) (int, error) { return f(p) }

// resetMode restores cooked mode on the controlling terminal
var resetMode = resetTerminalMode

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Cleanup cannot be called normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiRIS)

	// Flush if it's a file
	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// Escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetMode()
}
