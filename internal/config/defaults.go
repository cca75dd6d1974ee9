package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultRunnerYAML []byte

// DefaultRunnerConfig returns the built-in runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		World: WorldConfig{
			Width:        800,
			Height:       200,
			GroundHeight: 20,
		},
		Physics: PhysicsConfig{
			Gravity:    0.6,
			JumpHeight: 60,
			MaxJumps:   2,
		},
		Player: PlayerConfig{
			X:      50,
			Width:  48,
			Height: 48,
		},
		Ground: GroundObstacles{
			Width:       20,
			MinHeight:   20,
			MaxHeight:   60,
			MinInterval: 30,
			MaxInterval: 50,
		},
		Flying: FlyingObstacles{
			Size:       30,
			MinY:       20,
			MaxY:       80,
			SpawnEvery: 200,
		},
		Collision: CollisionConfig{
			Margin: 10,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			BaseSpeed:       6,
			SpeedMultiplier: 1.3,
			SpeedStep:       500,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultRunnerYAML
}
