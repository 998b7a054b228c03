//go:build darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TIOCGETA
	// Flushing variant: pending input typed before raw mode is discarded
	ioctlWriteTermios = unix.TIOCSETAF
)
