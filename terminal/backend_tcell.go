//go:build unix

package terminal

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// tcellBackend drives a tcell.Tty. tcell's raw mode blocks until a byte
// arrives, so a pump goroutine feeds reads into a channel and ReadByte
// applies the timeout.
type tcellBackend struct {
	tty     tcell.Tty
	timeout time.Duration

	// Input of the current raw-mode session, replaced on every Init
	sess *tcellSession

	mu      sync.Mutex
	running bool
	closed  bool
}

// tcellSession is owned by one pump goroutine
type tcellSession struct {
	input  chan byte
	done   chan struct{}
	exited chan struct{}
	err    error // read error that ended the pump, set before input closes

	drained bool // input closed and already reported
}

// NewTcellBackend opens the controlling terminal (/dev/tty) through tcell
func NewTcellBackend(timeout time.Duration) (Backend, error) {
	tty, err := tcell.NewDevTty()
	if err != nil {
		return nil, err
	}
	return newTcellBackend(tty, timeout), nil
}

// NewTcellBackendFromDev opens the named terminal device through tcell
func NewTcellBackendFromDev(dev string, timeout time.Duration) (Backend, error) {
	tty, err := tcell.NewDevTtyFromDev(dev)
	if err != nil {
		return nil, err
	}
	return newTcellBackend(tty, timeout), nil
}

func newTcellBackend(tty tcell.Tty, timeout time.Duration) *tcellBackend {
	return &tcellBackend{
		tty:     tty,
		timeout: timeout,
	}
}

func (b *tcellBackend) Size() (int, int, error) {
	ws, err := b.tty.WindowSize()
	if err != nil {
		return 0, 0, err
	}
	return ws.Width, ws.Height, nil
}

// Init starts raw mode. tcell reopens the device on every Start, so Init
// may follow Fini.
func (b *tcellBackend) Init() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return errBackendClosed
	}
	if b.running {
		return nil
	}
	if err := b.tty.Start(); err != nil {
		return err
	}

	b.sess = &tcellSession{
		input:  make(chan byte, 64),
		done:   make(chan struct{}),
		exited: make(chan struct{}),
	}
	b.running = true
	go b.pump(b.sess)
	return nil
}

// Fini restores the saved mode. tcell closes its working handle in Stop;
// the device handle stays open for a later Init until Close.
func (b *tcellBackend) Fini() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.running {
		return nil
	}
	b.running = false
	close(b.sess.done)

	// Drain unblocks the pump's pending read. The pump must be gone before
	// a later Start swaps the device handle under it.
	b.tty.Drain()
	err := b.tty.Stop()
	<-b.sess.exited
	return err
}

// Close releases the terminal device. The backend cannot be used afterwards.
func (b *tcellBackend) Close() error {
	err := b.Fini()

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return err
	}
	b.closed = true
	if cerr := b.tty.Close(); err == nil {
		err = cerr
	}
	return err
}

func (b *tcellBackend) Write(p []byte) (int, error) {
	return b.tty.Write(p)
}

func (b *tcellBackend) ReadByte() (byte, error) {
	timer := time.NewTimer(b.timeout)
	defer timer.Stop()

	// Once the pump is gone input stays nil and the timeout paces the caller
	s := b.sess
	var input <-chan byte
	if s != nil && !s.drained {
		input = s.input
	}

	select {
	case c, ok := <-input:
		if !ok {
			s.drained = true
			if s.err != nil {
				return 0, s.err
			}
			return 0, ErrNoInput
		}
		return c, nil
	case <-timer.C:
		return 0, ErrNoInput
	}
}

// pump is the only sender on s.input and closes it on exit
func (b *tcellBackend) pump(s *tcellSession) {
	defer close(s.exited)
	defer close(s.input)

	buf := make([]byte, 64)
	for {
		n, err := b.tty.Read(buf)
		for _, c := range buf[:n] {
			select {
			case s.input <- c:
			case <-s.done:
				return
			}
		}
		if err != nil {
			select {
			case <-s.done:
			default:
				s.err = err
			}
			return
		}
		select {
		case <-s.done:
			return
		default:
		}
	}
}
