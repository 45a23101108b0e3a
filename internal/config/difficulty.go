package config

import "math"

// SpeedScaleForPreset returns the multiplier applied to every mode's initial
// row interval. Larger values mean slower rows.
func SpeedScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 1.25
	case DifficultyHard:
		return 0.8
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables speed progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyTilesPreset modifies the config based on a difficulty preset.
func ApplyTilesPreset(cfg *TilesConfig, preset DifficultyPreset) {
	scale := SpeedScaleForPreset(preset)
	fixed := IsFixedPreset(preset)

	for _, mc := range []*ModeConfig{&cfg.Modes.Classic, &cfg.Modes.Arcade, &cfg.Modes.Zen, &cfg.Modes.Rush} {
		mc.InitialSpeedMs = scaleMs(mc.InitialSpeedMs, scale, cfg.Speed.MinMs)
		if fixed {
			mc.HitDropMs = 0
			mc.AutoDropMs = 0
		}
	}
}

// scaleMs scales ms and keeps the result at or above floor.
func scaleMs(ms int, scale float64, floor int) int {
	v := int(math.Round(float64(ms) * scale))
	return max(v, floor)
}
