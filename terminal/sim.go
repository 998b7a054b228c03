package terminal

import "bytes"

// SimBackend is an in-memory Backend with a fixed geometry. Output is
// captured and input is served from an injected queue, so a Screen can run
// headless.
type SimBackend struct {
	Width   int
	Height  int
	SizeErr error // returned by Size when set
	InitErr error // returned by Init when set
	FiniErr error // returned by Fini when set

	out bytes.Buffer
	in  []byte
	raw bool

	Inits int
	Finis int
}

// NewSimBackend returns a simulated terminal of the given geometry
func NewSimBackend(width, height int) *SimBackend {
	return &SimBackend{Width: width, Height: height}
}

func (s *SimBackend) Size() (int, int, error) {
	if s.SizeErr != nil {
		return 0, 0, s.SizeErr
	}
	return s.Width, s.Height, nil
}

func (s *SimBackend) Init() error {
	s.Inits++
	if s.InitErr != nil {
		return s.InitErr
	}
	s.raw = true
	return nil
}

func (s *SimBackend) Fini() error {
	s.Finis++
	s.raw = false
	return s.FiniErr
}

func (s *SimBackend) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *SimBackend) ReadByte() (byte, error) {
	if len(s.in) == 0 {
		return 0, ErrNoInput
	}
	c := s.in[0]
	s.in = s.in[1:]
	return c, nil
}

// Inject queues input bytes for ReadByte
func (s *SimBackend) Inject(p ...byte) {
	s.in = append(s.in, p...)
}

// RawMode reports whether the simulated terminal is between Init and Fini
func (s *SimBackend) RawMode() bool {
	return s.raw
}

// Output returns everything written so far
func (s *SimBackend) Output() string {
	return s.out.String()
}

// ResetOutput discards captured output
func (s *SimBackend) ResetOutput() {
	s.out.Reset()
}
