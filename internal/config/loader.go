package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the runner config file name in the search directories.
const ConfigFile = "runner.yaml"

// LoadRunner loads the runner configuration.
// Search order: customPath -> ~/.robo-runner/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return RunnerConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parse(defaultRunnerYAML)
	if err != nil {
		return DefaultRunnerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML on top of the hardcoded defaults so partial files only
// override the keys they set, then validates the result.
func parse(data []byte) (RunnerConfig, error) {
	cfg := DefaultRunnerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return RunnerConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return RunnerConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".robo-runner", "configs", filename)
}

// Validate reports configuration values the engine cannot run with.
func (c RunnerConfig) Validate() error {
	var errs []error

	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	if c.World.GroundHeight < 0 || c.World.GroundHeight >= c.World.Height {
		errs = append(errs, fmt.Errorf("ground_height %g must be in [0, height)", c.World.GroundHeight))
	}
	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity must be positive, got %g", c.Physics.Gravity))
	}
	if c.Physics.JumpHeight <= 0 {
		errs = append(errs, fmt.Errorf("jump_height must be positive, got %g", c.Physics.JumpHeight))
	}
	if c.Physics.MaxJumps < 1 {
		errs = append(errs, fmt.Errorf("max_jumps must be at least 1, got %d", c.Physics.MaxJumps))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, fmt.Errorf("player size must be positive, got %gx%g", c.Player.Width, c.Player.Height))
	}
	if c.Ground.Width <= 0 {
		errs = append(errs, fmt.Errorf("ground obstacle width must be positive, got %g", c.Ground.Width))
	}
	if c.Ground.MinHeight <= 0 || c.Ground.MaxHeight < c.Ground.MinHeight {
		errs = append(errs, fmt.Errorf("ground obstacle heights [%g, %g) are invalid", c.Ground.MinHeight, c.Ground.MaxHeight))
	}
	if c.Ground.MinInterval < 1 || c.Ground.MaxInterval < c.Ground.MinInterval {
		errs = append(errs, fmt.Errorf("ground spawn interval [%d, %d) is invalid", c.Ground.MinInterval, c.Ground.MaxInterval))
	}
	if c.Flying.Size <= 0 {
		errs = append(errs, fmt.Errorf("flying obstacle size must be positive, got %g", c.Flying.Size))
	}
	if c.Flying.MaxY < c.Flying.MinY {
		errs = append(errs, fmt.Errorf("flying obstacle band [%g, %g) is invalid", c.Flying.MinY, c.Flying.MaxY))
	}
	if c.Flying.SpawnEvery < 1 {
		errs = append(errs, fmt.Errorf("flying spawn_every must be at least 1, got %d", c.Flying.SpawnEvery))
	}
	if c.Collision.Margin < 0 {
		errs = append(errs, fmt.Errorf("collision margin must not be negative, got %g", c.Collision.Margin))
	}
	if c.Difficulty.BaseSpeed <= 0 {
		errs = append(errs, fmt.Errorf("base_speed must be positive, got %g", c.Difficulty.BaseSpeed))
	}
	if c.Difficulty.Enabled {
		if c.Difficulty.SpeedMultiplier < 1 {
			errs = append(errs, fmt.Errorf("speed_multiplier must be at least 1, got %g", c.Difficulty.SpeedMultiplier))
		}
		if c.Difficulty.SpeedStep < 1 {
			errs = append(errs, fmt.Errorf("speed_step must be at least 1, got %d", c.Difficulty.SpeedStep))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid runner config: %w", errors.Join(errs...))
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *RunnerConfig, preset DifficultyPreset) {
	switch {
	case preset == "":
		return
	case IsFixedPreset(preset):
		cfg.Difficulty.Enabled = false
	default:
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.BaseSpeed = BaseSpeedForPreset(preset)
	}
}
