package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the default runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Surface: SurfaceConfig{
			Width:   600,
			Height:  150,
			GroundY: 120,
		},
		Physics: PhysicsConfig{
			Gravity:       0.6,
			JumpForce:     -11,
			BaseSpeed:     6,
			SpeedStep:     0.3,
			SpeedEvery:    500,
			CloudParallax: 0.2,
		},
		Player: PlayerConfig{
			X:           50,
			Width:       44,
			Height:      47,
			InsetX:      10,
			InsetY:      5,
			LegInterval: 6,
		},
		Obstacles: ObstacleConfig{
			Width:        25,
			MinHeight:    50,
			HeightJitter: 15,
			InsetX:       5,
			InsetBottom:  5,
			SpawnBase:    80,
			SpawnJitter:  40,
		},
		Clouds: CloudConfig{
			Start: []Point{
				{X: 100, Y: 30},
				{X: 300, Y: 20},
				{X: 500, Y: 40},
			},
			ExitX:         -50,
			RespawnJitter: 100,
			MinY:          20,
			YJitter:       30,
		},
		Ground: GroundConfig{
			SpeckleSpacing: 20,
			SpeckleChance:  0.3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
