// Package config provides YAML-based game configuration loading and
// difficulty presets for the tiles engine.
package config

import (
	"fmt"
	"time"
)

// TilesConfig contains all configuration for the tiles engine.
type TilesConfig struct {
	Board  BoardConfig  `yaml:"board"`
	Timing TimingConfig `yaml:"timing"`
	Speed  SpeedConfig  `yaml:"speed"`
	Modes  ModesConfig  `yaml:"modes"`
}

// BoardConfig defines board geometry and the column key table.
type BoardConfig struct {
	Columns     int      `yaml:"columns"`
	VisibleRows int      `yaml:"visible_rows"`
	Keys        []string `yaml:"keys"` // One key per column, left to right
}

// TimingConfig defines the cadence of the fixed periodic activities.
type TimingConfig struct {
	SampleIntervalMs    int `yaml:"sample_interval_ms"`
	CountdownSteps      int `yaml:"countdown_steps"`
	CountdownIntervalMs int `yaml:"countdown_interval_ms"`
}

// SpeedConfig defines limits shared by every mode.
type SpeedConfig struct {
	MinMs int `yaml:"min_ms"` // Floor for the row interval
}

// ModeConfig defines the rules of a single mode.
// Zero values disable the corresponding rule.
type ModeConfig struct {
	InitialSpeedMs int  `yaml:"initial_speed_ms"`
	HitDropMs      int  `yaml:"hit_drop_ms"`
	AutoDropMs     int  `yaml:"auto_drop_ms"`
	AutoIntervalMs int  `yaml:"auto_interval_ms"`
	Target         int  `yaml:"target"`
	TimeLimitMs    int  `yaml:"time_limit_ms"`
	LossOnMiss     bool `yaml:"loss_on_miss"`
	LossOnExpire   bool `yaml:"loss_on_expire"`
}

// ModesConfig holds the per-mode rules.
type ModesConfig struct {
	Classic ModeConfig `yaml:"classic"`
	Arcade  ModeConfig `yaml:"arcade"`
	Zen     ModeConfig `yaml:"zen"`
	Rush    ModeConfig `yaml:"rush"`
}

// Ms converts a millisecond count from the YAML file to a duration.
func Ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Validate reports the first setting that would leave the engine unplayable.
func (c TilesConfig) Validate() error {
	if c.Board.Columns <= 0 {
		return fmt.Errorf("config: board.columns must be positive, got %d", c.Board.Columns)
	}
	if c.Board.VisibleRows <= 0 {
		return fmt.Errorf("config: board.visible_rows must be positive, got %d", c.Board.VisibleRows)
	}
	if len(c.Board.Keys) != c.Board.Columns {
		return fmt.Errorf("config: board.keys has %d entries, expected %d", len(c.Board.Keys), c.Board.Columns)
	}
	seen := make(map[string]bool, len(c.Board.Keys))
	for _, k := range c.Board.Keys {
		if k == "" {
			return fmt.Errorf("config: board.keys contains an empty key")
		}
		if seen[k] {
			return fmt.Errorf("config: board.keys contains %q twice", k)
		}
		seen[k] = true
	}
	if c.Timing.SampleIntervalMs <= 0 {
		return fmt.Errorf("config: timing.sample_interval_ms must be positive")
	}
	if c.Timing.CountdownSteps < 0 {
		return fmt.Errorf("config: timing.countdown_steps cannot be negative")
	}
	if c.Timing.CountdownIntervalMs <= 0 {
		return fmt.Errorf("config: timing.countdown_interval_ms must be positive")
	}
	if c.Speed.MinMs <= 0 {
		return fmt.Errorf("config: speed.min_ms must be positive")
	}

	modes := []struct {
		name string
		mc   ModeConfig
	}{
		{"classic", c.Modes.Classic},
		{"arcade", c.Modes.Arcade},
		{"zen", c.Modes.Zen},
		{"rush", c.Modes.Rush},
	}
	for _, m := range modes {
		if m.mc.InitialSpeedMs <= 0 {
			return fmt.Errorf("config: modes.%s.initial_speed_ms must be positive", m.name)
		}
		if m.mc.HitDropMs < 0 || m.mc.AutoDropMs < 0 || m.mc.AutoIntervalMs < 0 {
			return fmt.Errorf("config: modes.%s speed drops cannot be negative", m.name)
		}
	}
	if c.Modes.Classic.Target <= 0 {
		return fmt.Errorf("config: modes.classic.target must be positive")
	}
	if c.Modes.Zen.TimeLimitMs <= 0 {
		return fmt.Errorf("config: modes.zen.time_limit_ms must be positive")
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
// An empty string selects DifficultyNormal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (expected easy, normal, hard, or fixed)", s)
	}
}
