package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/scb/internal/config"
	"github.com/lixenwraith/scb/terminal"
)

func newSimDemo(t *testing.T, width, height int) (*demo, *terminal.SimBackend) {
	t.Helper()
	sim := terminal.NewSimBackend(width, height)
	scr := terminal.NewScreen(sim, nil)
	require.NoError(t, scr.Init())
	t.Cleanup(scr.Cleanup)

	d := newDemo(scr, config.DefaultConfig(), slog.New(slog.DiscardHandler))
	return d, sim
}

func TestDemo_CursorHiddenByDefault(t *testing.T) {
	d, sim := newSimDemo(t, 40, 5)
	assert.False(t, d.scr.CursorVisible())
	assert.Equal(t, "\x1b[?25l", sim.Output())
}

func TestDemo_FrameContents(t *testing.T) {
	d, sim := newSimDemo(t, 40, 5)

	require.True(t, d.step())
	sim.ResetOutput()

	// The second step flushes what the first one buffered
	require.True(t, d.step())
	out := sim.Output()

	assert.Contains(t, out, "\x1b[K[screen: 40x5 ]\r\n")
	assert.Contains(t, out, "\x1b[K[frame: 0000 ]\r\n")
	assert.Contains(t, out, "\x1b[K"+strings.Repeat(" ", 14)+"SCB 0.1 DEMO\r\n")
}

func TestDemo_BannerBlinks(t *testing.T) {
	tests := []struct {
		frame      int
		wantBanner bool
	}{
		{0, true},
		{4, true},
		{5, false},
		{9, false},
		{10, true},
	}

	for _, tc := range tests {
		d, sim := newSimDemo(t, 40, 5)
		d.frame = tc.frame
		d.draw()
		sim.ResetOutput()
		d.scr.Flush()

		assert.Equal(t, tc.wantBanner, strings.Contains(sim.Output(), "SCB 0.1 DEMO"), "frame %d", tc.frame)
	}
}

func TestDemo_NarrowScreenSkipsPadding(t *testing.T) {
	d, sim := newSimDemo(t, 8, 7)
	d.draw()
	sim.ResetOutput()
	d.scr.Flush()

	// Banner wider than the screen wraps instead of being padded
	assert.Contains(t, sim.Output(), "\x1b[KSCB 0.1 \r\n\x1b[KDEMO\r\n")
}

func TestDemo_QuitKeys(t *testing.T) {
	tests := []struct {
		name string
		key  byte
	}{
		{"Ctrl+Q", terminal.KeyCtrlQ},
		{"Ctrl+C", terminal.KeyCtrlC},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			d, sim := newSimDemo(t, 40, 5)

			sim.Inject('x')
			assert.True(t, d.step(), "ordinary keys do not quit")

			sim.Inject(tc.key)
			assert.False(t, d.step())
			assert.Equal(t, 2, d.frame)
		})
	}
}

func TestDemo_MaxFrames(t *testing.T) {
	d, _ := newSimDemo(t, 40, 5)
	d.maxFrames = 3

	d.run()
	assert.Equal(t, 3, d.frame)
}

func TestRootCmd_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "demo.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: tcell\nbanner: FILE\nread_timeout: 500ms\n"), 0644))

	var got *config.Config
	var gotFrames int
	orig := runDemo
	runDemo = func(cfg *config.Config, frames int) error {
		got, gotFrames = cfg, frames
		return nil
	}
	defer func() { runDemo = orig }()

	cmd := newRootCmd()
	cmd.SetArgs([]string{"--config", path, "--backend", "native", "--cursor", "--frames", "7"})
	require.NoError(t, cmd.Execute())

	require.NotNil(t, got)
	assert.Equal(t, terminal.BackendNative, got.Backend, "flag wins over file")
	assert.Equal(t, "FILE", got.Banner, "file wins over default")
	assert.Equal(t, 500*time.Millisecond, got.ReadTimeout, "unset flag keeps file value")
	assert.True(t, got.ShowCursor)
	assert.Equal(t, 7, gotFrames)
}

func TestRootCmd_RejectsBadInput(t *testing.T) {
	orig := runDemo
	runDemo = func(cfg *config.Config, frames int) error {
		t.Fatal("demo must not start")
		return nil
	}
	defer func() { runDemo = orig }()

	for _, args := range [][]string{
		{"--backend", "curses"},
		{"--timeout", "1ms"},
		{"--frames", "-1"},
		{"extra"},
	} {
		cmd := newRootCmd()
		cmd.SetArgs(args)
		cmd.SetOut(new(strings.Builder))
		cmd.SetErr(new(strings.Builder))
		assert.Error(t, cmd.Execute(), "args %v", args)
	}
}
