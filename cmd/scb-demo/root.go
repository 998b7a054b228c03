package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/scb/internal/config"
	"github.com/lixenwraith/scb/internal/logger"
	"github.com/lixenwraith/scb/terminal"
)

// runDemo is swapped out by tests that only exercise flag handling
var runDemo = run

type flags struct {
	configPath string
	backend    string
	timeout    time.Duration
	showCursor bool
	debug      bool
	logDir     string
	frames     int
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "scb-demo",
		Short: "Buffered console screen demo",
		Long: `scb-demo redraws a status frame through the buffered screen on every
read timeout until Ctrl+Q or Ctrl+C is pressed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, &f)
			if err != nil {
				return err
			}
			return runDemo(cfg, f.frames)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.configPath, "config", "c", "", "YAML config file")
	fs.StringVar(&f.backend, "backend", terminal.BackendNative, "Terminal backend: native, tcell")
	fs.DurationVar(&f.timeout, "timeout", terminal.DefaultReadTimeout, "Input wait per frame")
	fs.BoolVar(&f.showCursor, "cursor", false, "Keep the cursor visible")
	fs.BoolVar(&f.debug, "debug", false, "Enable debug logging to a file")
	fs.StringVar(&f.logDir, "log-dir", "", "Directory for debug logs")
	fs.IntVar(&f.frames, "frames", 0, "Stop after this many frames (0 runs until Ctrl+Q)")

	return cmd
}

// resolveConfig loads the config file and applies explicitly set flags on top
func resolveConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	fs := cmd.Flags()
	if fs.Changed("backend") {
		cfg.Backend = f.backend
	}
	if fs.Changed("timeout") {
		cfg.ReadTimeout = f.timeout
	}
	if fs.Changed("cursor") {
		cfg.ShowCursor = f.showCursor
	}
	if fs.Changed("debug") {
		cfg.Log.Debug = f.debug
	}
	if fs.Changed("log-dir") {
		cfg.Log.Dir = f.logDir
	}
	if f.frames < 0 {
		return nil, fmt.Errorf("frames must not be negative, got %d", f.frames)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// run owns the terminal for the lifetime of the demo
func run(cfg *config.Config, maxFrames int) error {
	log, logFile, err := logger.Setup(cfg.Log.Dir, cfg.Log.Debug)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	opts := cfg.TerminalOptions()
	opts.Logger = log
	scr, err := terminal.New(opts)
	if err != nil {
		return err
	}
	if err := scr.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer func() {
		if err := scr.Close(); err != nil {
			log.Debug("terminal close failed", "error", err)
		}
	}()

	// A panic mid-frame must not leave the terminal raw
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			panic(r)
		}
	}()

	d := newDemo(scr, cfg, log)
	d.maxFrames = maxFrames
	d.run()

	log.Info("demo finished", "frames", d.frame)
	return nil
}
