package terminal

import "errors"

var (
	// ErrSizeDetection reports that the terminal geometry could not be read
	// or has a zero dimension. The screen must not be used after it.
	ErrSizeDetection = errors.New("terminal size detection failed")

	// ErrNotTerminal reports an input device that is not a terminal
	ErrNotTerminal = errors.New("input is not a terminal")

	// ErrNoInput is returned by Backend.ReadByte when the read timeout expires
	ErrNoInput = errors.New("no input")

	// ErrUnknownBackend reports an unrecognized Options.Backend value
	ErrUnknownBackend = errors.New("unknown backend")
)

var errBackendClosed = errors.New("terminal backend closed")
