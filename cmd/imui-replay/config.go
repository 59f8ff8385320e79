package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/phanxgames/imui"
)

const (
	defaultWidth     = 640
	defaultHeight    = 480
	defaultMaxFrames = 10000
	frameInterval    = 16
)

// config is a replay session as read from TOML.
type config struct {
	Width   float64           `toml:"width"`
	Height  float64           `toml:"height"`
	Buttons []string          `toml:"buttons"`
	Steps   []imui.ScriptStep `toml:"steps"`

	// MaxFrames bounds the replay in case the script never finishes.
	MaxFrames int `toml:"max_frames"`
}

// loadConfig reads and validates the session file at path.
func loadConfig(path string) (config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return config{}, fmt.Errorf("read session: %w", err)
	}
	return parseConfig(data)
}

func parseConfig(data []byte) (config, error) {
	var cfg config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return config{}, fmt.Errorf("parse session: %w", err)
	}
	if cfg.Width == 0 {
		cfg.Width = defaultWidth
	}
	if cfg.Height == 0 {
		cfg.Height = defaultHeight
	}
	if cfg.MaxFrames == 0 {
		cfg.MaxFrames = defaultMaxFrames
	}

	if !(cfg.Width > 0) || !(cfg.Height > 0) {
		return config{}, fmt.Errorf("parse session: size must be positive, got %vx%v", cfg.Width, cfg.Height)
	}
	if len(cfg.Buttons) == 0 {
		return config{}, fmt.Errorf("parse session: no buttons")
	}
	if len(cfg.Steps) == 0 {
		return config{}, fmt.Errorf("parse session: no steps")
	}
	return cfg, nil
}
