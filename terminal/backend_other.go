//go:build !unix

package terminal

import (
	"errors"
	"os"
	"time"
)

var errUnsupported = errors.New("terminal backend not supported on this platform")

type unsupportedBackend struct{}

// NewNativeBackend returns a backend whose Size always fails, so Init
// reports ErrSizeDetection without touching the terminal
func NewNativeBackend(in, out *os.File, timeout time.Duration) Backend {
	return unsupportedBackend{}
}

// NewTcellBackend is not available on this platform
func NewTcellBackend(timeout time.Duration) (Backend, error) {
	return nil, errUnsupported
}

// NewTcellBackendFromDev is not available on this platform
func NewTcellBackendFromDev(dev string, timeout time.Duration) (Backend, error) {
	return nil, errUnsupported
}

func (unsupportedBackend) Size() (int, int, error)     { return 0, 0, errUnsupported }
func (unsupportedBackend) Init() error                 { return errUnsupported }
func (unsupportedBackend) Fini() error                 { return nil }
func (unsupportedBackend) Write(p []byte) (int, error) { return 0, errUnsupported }
func (unsupportedBackend) ReadByte() (byte, error)     { return 0, ErrNoInput }

func resetTerminalMode() {}
