package config

import (
	_ "embed"
)

//go:embed defaults/tiles.yaml
var defaultTilesYAML []byte

// DefaultTilesConfig returns the default tiles configuration.
func DefaultTilesConfig() TilesConfig {
	return TilesConfig{
		Board: BoardConfig{
			Columns:     4,
			VisibleRows: 4,
			Keys:        []string{"d", "f", "j", "k"},
		},
		Timing: TimingConfig{
			SampleIntervalMs:    10,
			CountdownSteps:      3,
			CountdownIntervalMs: 600,
		},
		Speed: SpeedConfig{
			MinMs: 150,
		},
		Modes: ModesConfig{
			Classic: ModeConfig{
				InitialSpeedMs: 800,
				Target:         50,
				LossOnMiss:     true,
				LossOnExpire:   true,
			},
			Arcade: ModeConfig{
				InitialSpeedMs: 600,
				HitDropMs:      2,
				LossOnMiss:     true,
				LossOnExpire:   true,
			},
			Zen: ModeConfig{
				InitialSpeedMs: 800,
				TimeLimitMs:    30000,
			},
			Rush: ModeConfig{
				InitialSpeedMs: 700,
				HitDropMs:      6,
				AutoDropMs:     5,
				AutoIntervalMs: 2000,
				LossOnMiss:     true,
				LossOnExpire:   true,
			},
		},
	}
}

// DefaultTilesYAML returns the embedded default YAML.
func DefaultTilesYAML() []byte {
	return defaultTilesYAML
}
