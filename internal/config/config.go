package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/scb/terminal"
)

// Config holds the demo settings
type Config struct {
	Backend     string        `yaml:"backend"`      // native or tcell
	ReadTimeout time.Duration `yaml:"read_timeout"` // per-frame input wait
	ShowCursor  bool          `yaml:"show_cursor"`  // cursor visible while running
	Banner      string        `yaml:"banner"`       // centered blinking text
	BlinkPeriod int           `yaml:"blink_period"` // frames per blink cycle
	Log         LogConfig     `yaml:"log"`
}

// LogConfig controls debug logging
type LogConfig struct {
	Dir   string `yaml:"dir"`
	Debug bool   `yaml:"debug"`
}

// Read timeouts must fit the termios VTIME field
const (
	MinReadTimeout = 100 * time.Millisecond
	MaxReadTimeout = 25500 * time.Millisecond
)

// DefaultConfig returns the built-in settings
func DefaultConfig() *Config {
	return &Config{
		Backend:     terminal.BackendNative,
		ReadTimeout: terminal.DefaultReadTimeout,
		ShowCursor:  false,
		Banner:      "SCB 0.1 DEMO",
		BlinkPeriod: 10,
		Log: LogConfig{
			Dir: "logs",
		},
	}
}

// Load reads configuration from path over the defaults. An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings
func (c *Config) Validate() error {
	switch c.Backend {
	case terminal.BackendNative, terminal.BackendTcell:
	default:
		return fmt.Errorf("%w: %q", terminal.ErrUnknownBackend, c.Backend)
	}

	if c.ReadTimeout < MinReadTimeout || c.ReadTimeout > MaxReadTimeout {
		return fmt.Errorf("read_timeout %v outside [%v, %v]", c.ReadTimeout, MinReadTimeout, MaxReadTimeout)
	}

	if c.BlinkPeriod <= 0 {
		return fmt.Errorf("blink_period must be positive, got %d", c.BlinkPeriod)
	}
	return nil
}

// TerminalOptions maps the settings onto terminal.Options
func (c *Config) TerminalOptions() terminal.Options {
	return terminal.Options{
		Backend:     c.Backend,
		ReadTimeout: c.ReadTimeout,
	}
}
