package terminal

// Backend abstracts the device half of the screen: geometry, terminal mode
// and raw byte I/O. Screen owns everything else.
type Backend interface {
	// Size reports the device geometry. Called once, before Init.
	Size() (width, height int, err error)

	// Init saves the current terminal attributes and enters raw mode
	Init() error

	// Fini restores the attributes saved by Init. Safe to call multiple times.
	Fini() error

	// Write writes raw bytes to the terminal output
	Write(p []byte) (int, error)

	// ReadByte reads one input byte, waiting at most the configured read
	// timeout. It returns ErrNoInput when nothing arrived in time.
	ReadByte() (byte, error)
}
