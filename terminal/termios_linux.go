//go:build linux

package terminal

import "golang.org/x/sys/unix"

const (
	ioctlReadTermios = unix.TCGETS
	// Flushing variant: pending input typed before raw mode is discarded
	ioctlWriteTermios = unix.TCSETSF
)
