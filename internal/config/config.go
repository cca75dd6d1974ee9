// Package config provides YAML-based runner configuration loading and the
// speed ramp used by the engine.
package config

// RunnerConfig contains all tunables for the runner. Distances are world
// units, times are frames.
type RunnerConfig struct {
	World      WorldConfig      `yaml:"world"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Player     PlayerConfig     `yaml:"player"`
	Ground     GroundObstacles  `yaml:"ground_obstacles"`
	Flying     FlyingObstacles  `yaml:"flying_obstacles"`
	Collision  CollisionConfig  `yaml:"collision"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the logical drawing surface.
type WorldConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundHeight float64 `yaml:"ground_height"` // Height of the ground strip at the bottom
}

// GroundY returns the y-coordinate of the ground surface.
func (w WorldConfig) GroundY() float64 {
	return w.Height - w.GroundHeight
}

// PhysicsConfig defines player physics.
type PhysicsConfig struct {
	Gravity    float64 `yaml:"gravity"`
	JumpHeight float64 `yaml:"jump_height"` // Apex height of a jump from rest
	MaxJumps   int     `yaml:"max_jumps"`   // Jumps allowed between ground contacts
}

// PlayerConfig defines the player's box.
type PlayerConfig struct {
	X      float64 `yaml:"x"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// GroundObstacles defines ground hazard generation.
type GroundObstacles struct {
	Width       float64 `yaml:"width"`
	MinHeight   float64 `yaml:"min_height"`   // Inclusive
	MaxHeight   float64 `yaml:"max_height"`   // Exclusive
	MinInterval int     `yaml:"min_interval"` // Inclusive, frames between spawns
	MaxInterval int     `yaml:"max_interval"` // Exclusive
}

// FlyingObstacles defines airborne hazard generation.
type FlyingObstacles struct {
	Size       float64 `yaml:"size"`
	MinY       float64 `yaml:"min_y"` // Inclusive, top edge
	MaxY       float64 `yaml:"max_y"` // Exclusive
	SpawnEvery int     `yaml:"spawn_every"`
}

// CollisionConfig defines the forgiveness applied to hit tests.
type CollisionConfig struct {
	Margin float64 `yaml:"margin"` // Horizontal shrink applied on each side
}

// DifficultyConfig defines the stepwise speed increase.
type DifficultyConfig struct {
	Enabled         bool    `yaml:"enabled"`
	BaseSpeed       float64 `yaml:"base_speed"`
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Applied each time a step is crossed
	SpeedStep       int     `yaml:"speed_step"`       // Points between speed increases
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset.
// Unknown values yield the empty preset, which keeps the config as loaded.
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// BaseSpeedForPreset returns the starting speed for a difficulty preset.
func BaseSpeedForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 5
	case DifficultyHard:
		return 8
	default:
		return 6
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
