package main

import (
	"log/slog"

	"github.com/lixenwraith/scb/internal/config"
	"github.com/lixenwraith/scb/terminal"
)

// demo is the frame loop: flush the previous frame, print the next one,
// wait for a key
type demo struct {
	scr *terminal.Screen
	cfg *config.Config
	log *slog.Logger

	frame     int
	maxFrames int // 0 for no limit
}

func newDemo(scr *terminal.Screen, cfg *config.Config, log *slog.Logger) *demo {
	scr.SetCursorVisible(cfg.ShowCursor)
	return &demo{
		scr: scr,
		cfg: cfg,
		log: log,
	}
}

func (d *demo) run() {
	for d.step() {
	}
}

// step draws one frame and handles at most one key. It reports whether the
// loop should continue.
func (d *demo) step() bool {
	d.draw()
	d.frame++

	c := d.scr.ReadChar()
	if c != 0 {
		d.log.Debug("key", "name", terminal.KeyName(c), "frame", d.frame)
	}
	// ISIG is off in raw mode, so Ctrl+C arrives as a byte
	if c == terminal.KeyCtrlQ || c == terminal.KeyCtrlC {
		return false
	}
	return d.maxFrames == 0 || d.frame < d.maxFrames
}

// draw shows the previous frame and buffers the current one
func (d *demo) draw() {
	scr := d.scr
	scr.Flush()

	scr.Printf("[screen: %dx%d ]\n", scr.Width(), scr.Height())
	scr.Printf("[frame: %04d ]\n", d.frame)

	if d.frame%d.cfg.BlinkPeriod < (d.cfg.BlinkPeriod+1)/2 {
		banner := d.cfg.Banner
		for i := 0; i < (scr.Width()-len(banner))/2; i++ {
			scr.Printf(" ")
		}
		scr.Printf("%s\n", banner)
	}
}
