package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Backend names accepted by Options.Backend
const (
	BackendNative = "native"
	BackendTcell  = "tcell"
)

// DefaultReadTimeout bounds ReadChar when Options.ReadTimeout is zero
const DefaultReadTimeout = 100 * time.Millisecond

// Options configures New
type Options struct {
	// Backend selects the device implementation, BackendNative when empty
	Backend string

	// In and Out default to os.Stdin and os.Stdout (native backend only)
	In  *os.File
	Out *os.File

	// ReadTimeout bounds a single ReadChar, DefaultReadTimeout when zero
	ReadTimeout time.Duration

	// Logger receives debug diagnostics, discarded when nil
	Logger *slog.Logger
}

// New builds a Screen on the backend named in opts
func New(opts Options) (*Screen, error) {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.ReadTimeout <= 0 {
		opts.ReadTimeout = DefaultReadTimeout
	}

	var b Backend
	switch opts.Backend {
	case "", BackendNative:
		b = NewNativeBackend(opts.In, opts.Out, opts.ReadTimeout)
	case BackendTcell:
		tb, err := NewTcellBackend(opts.ReadTimeout)
		if err != nil {
			return nil, fmt.Errorf("tcell backend: %w", err)
		}
		b = tb
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}

	return NewScreen(b, opts.Logger), nil
}

// vtime converts a read timeout into the termios VTIME unit (deciseconds),
// clamped to what the byte-sized field can hold
func vtime(d time.Duration) uint8 {
	ds := (d + 50*time.Millisecond) / (100 * time.Millisecond)
	if ds < 1 {
		return 1
	}
	if ds > 255 {
		return 255
	}
	return uint8(ds)
}
