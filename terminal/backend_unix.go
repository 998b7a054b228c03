//go:build unix

package terminal

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

type nativeBackend struct {
	in      *os.File
	out     *os.File
	inFd    int
	outFd   int
	timeout time.Duration

	// Attributes captured by Init, nil outside raw mode
	saved *unix.Termios
}

// NewNativeBackend returns a termios backend reading from in and writing to
// out. Reads wait at most timeout, rounded to deciseconds.
func NewNativeBackend(in, out *os.File, timeout time.Duration) Backend {
	return &nativeBackend{
		in:      in,
		out:     out,
		inFd:    int(in.Fd()),
		outFd:   int(out.Fd()),
		timeout: timeout,
	}
}

func (b *nativeBackend) Size() (int, int, error) {
	return getTerminalSize(b.outFd)
}

func (b *nativeBackend) Init() error {
	if b.saved != nil {
		return nil
	}
	if !term.IsTerminal(b.inFd) {
		return ErrNotTerminal
	}

	cur, err := unix.IoctlGetTermios(b.inFd, ioctlReadTermios)
	if err != nil {
		return fmt.Errorf("get termios: %w", err)
	}
	saved := *cur

	raw := makeRaw(saved, vtime(b.timeout))
	if err := unix.IoctlSetTermios(b.inFd, ioctlWriteTermios, &raw); err != nil {
		return fmt.Errorf("set raw: %w", err)
	}
	b.saved = &saved
	return nil
}

func (b *nativeBackend) Fini() error {
	if b.saved == nil {
		return nil
	}
	saved := b.saved
	b.saved = nil
	return unix.IoctlSetTermios(b.inFd, ioctlWriteTermios, saved)
}

func (b *nativeBackend) Write(p []byte) (int, error) {
	return b.out.Write(p)
}

// ReadByte relies on VMIN=0/VTIME set by Init: the kernel returns after one
// byte or after the timeout with nothing
func (b *nativeBackend) ReadByte() (byte, error) {
	var buf [1]byte
	n, err := unix.Read(b.inFd, buf[:])
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, ErrNoInput
		}
		return 0, err
	}
	if n == 0 {
		return 0, ErrNoInput
	}
	return buf[0], nil
}

// makeRaw derives the raw-mode attributes from t. The result is a separate
// copy; t is left as captured.
func makeRaw(t unix.Termios, vt uint8) unix.Termios {
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	t.Cflag |= unix.CS8

	// Return after one byte or vt deciseconds, whichever comes first
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = vt
	return t
}

// getTerminalSize returns the terminal size for a given fd
func getTerminalSize(fd int) (int, int, error) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	if tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
		defer tty.Close()
		fd := int(tty.Fd())
		if termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios); err == nil {
			termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
			termios.Iflag |= unix.ICRNL
			termios.Oflag |= unix.OPOST
			unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
		}
	}
}
