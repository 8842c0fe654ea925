package config

import "fmt"

// ParsePreset converts a CLI value to a preset. Empty input means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// speedFactorForPreset returns the base speed multiplier for a preset.
func speedFactorForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.3
	default:
		return 1.0
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// Fixed keeps the base speed and disables the speed ramp.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Physics.SpeedStep = 0
		return
	}
	cfg.Physics.BaseSpeed *= speedFactorForPreset(preset)
}
