// Package config provides YAML-based runner configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
)

// RunnerConfig contains all tunables of the runner simulation.
// Units are logical surface units per frame unless noted otherwise.
type RunnerConfig struct {
	Surface   SurfaceConfig  `yaml:"surface"`
	Physics   PhysicsConfig  `yaml:"physics"`
	Player    PlayerConfig   `yaml:"player"`
	Obstacles ObstacleConfig `yaml:"obstacles"`
	Clouds    CloudConfig    `yaml:"clouds"`
	Ground    GroundConfig   `yaml:"ground"`
}

// SurfaceConfig defines the logical drawing surface.
type SurfaceConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	GroundY float64 `yaml:"ground_y"`
}

// PhysicsConfig defines gravity, jumping and the scroll speed ramp.
type PhysicsConfig struct {
	Gravity       float64 `yaml:"gravity"`
	JumpForce     float64 `yaml:"jump_force"` // Negative = upward
	BaseSpeed     float64 `yaml:"base_speed"`
	SpeedStep     float64 `yaml:"speed_step"`
	SpeedEvery    int     `yaml:"speed_every"` // Frames between speed steps
	CloudParallax float64 `yaml:"cloud_parallax"`
}

// PlayerConfig defines the dino's fixed position, size and hitbox insets.
type PlayerConfig struct {
	X           float64 `yaml:"x"`
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	InsetX      float64 `yaml:"inset_x"`
	InsetY      float64 `yaml:"inset_y"`
	LegInterval int     `yaml:"leg_interval"` // Frames per leg animation step
}

// ObstacleConfig defines cactus sizes, hitbox insets and spawn timing.
type ObstacleConfig struct {
	Width        float64 `yaml:"width"`
	MinHeight    float64 `yaml:"min_height"`
	HeightJitter float64 `yaml:"height_jitter"`
	InsetX       float64 `yaml:"inset_x"`
	InsetBottom  float64 `yaml:"inset_bottom"`
	SpawnBase    int     `yaml:"spawn_base"`   // Frames
	SpawnJitter  float64 `yaml:"spawn_jitter"` // Extra frames, re-rolled every check
}

// CloudConfig defines the decorative background clouds.
type CloudConfig struct {
	Start         []Point `yaml:"start"`
	ExitX         float64 `yaml:"exit_x"`
	RespawnJitter float64 `yaml:"respawn_jitter"`
	MinY          float64 `yaml:"min_y"`
	YJitter       float64 `yaml:"y_jitter"`
}

// GroundConfig defines the cosmetic ground speckles.
type GroundConfig struct {
	SpeckleSpacing float64 `yaml:"speckle_spacing"`
	SpeckleChance  float64 `yaml:"speckle_chance"`
}

// Point is a logical surface position.
type Point struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Validate reports every setting that would break the simulation.
func (c RunnerConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Surface.Width > 0 && c.Surface.Height > 0, "surface size must be positive, got %vx%v", c.Surface.Width, c.Surface.Height)
	check(c.Surface.GroundY > 0 && c.Surface.GroundY <= c.Surface.Height, "ground_y %v outside surface", c.Surface.GroundY)
	check(c.Physics.Gravity > 0, "gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpForce < 0, "jump_force must be negative, got %v", c.Physics.JumpForce)
	check(c.Physics.BaseSpeed > 0, "base_speed must be positive, got %v", c.Physics.BaseSpeed)
	check(c.Physics.SpeedStep >= 0, "speed_step must not be negative, got %v", c.Physics.SpeedStep)
	check(c.Physics.SpeedEvery > 0, "speed_every must be positive, got %d", c.Physics.SpeedEvery)
	check(c.Player.Width > 2*c.Player.InsetX && c.Player.Height > 2*c.Player.InsetY, "player hitbox insets exceed player size")
	check(c.Player.Height < c.Surface.GroundY, "player height %v does not fit above ground", c.Player.Height)
	check(c.Player.LegInterval > 0, "leg_interval must be positive, got %d", c.Player.LegInterval)
	check(c.Obstacles.Width > 2*c.Obstacles.InsetX, "obstacle inset_x exceeds width")
	check(c.Obstacles.MinHeight > c.Obstacles.InsetBottom, "obstacle inset_bottom exceeds min_height")
	check(c.Obstacles.SpawnBase >= 1, "spawn_base must be at least 1, got %d", c.Obstacles.SpawnBase)
	check(c.Obstacles.SpawnJitter >= 0 && c.Obstacles.HeightJitter >= 0, "jitter must not be negative")
	check(len(c.Clouds.Start) > 0, "at least one cloud start position is required")

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid runner config: %w", errors.Join(errs...))
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
