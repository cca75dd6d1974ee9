package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/robo-runner/internal/asset"
	"github.com/vovakirdan/robo-runner/internal/platform/window"
	"github.com/vovakirdan/robo-runner/internal/runner"
)

var (
	flagScale     float64
	flagAutopilot bool
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open the runner in a desktop window.

Controls:
  Space/Up/W   - Jump (twice for a double jump)
  Mouse click  - Jump, or restart on the Restart button
  P            - Pause
  R/Enter      - Restart (after game over)
  Esc/Q        - Quit

Examples:
  runner window
  runner window --scale 2
  runner window --autopilot`,
	Args: cobra.NoArgs,
	Run:  runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window pixels per world unit")
	windowCmd.Flags().BoolVar(&flagAutopilot, "autopilot", false, "Let the computer play (attract mode, scores are not saved)")
}

func runWindow(_ *cobra.Command, _ []string) {
	if err := playWindow(); err != nil {
		fail("%v", err)
	}
}

func playWindow() error {
	logger := newLogger(os.Stderr, "runner")

	cfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}
	rc := runtimeConfig(int(cfg.World.Width), int(cfg.World.Height))

	store, book := openScoreBook(logger)
	if store != nil {
		defer store.Close()
	}

	sound, cleanup := newSound(logger)
	defer cleanup()

	sprite := asset.Load(flagSprite)
	engine := runner.New(cfg, rc, engineOptions(book, sound, sprite, logger, flagAutopilot))

	err = window.Run(engine, window.Options{
		Scale:     flagScale,
		TickRate:  flagFPS,
		Autopilot: flagAutopilot,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("running window: %w", err)
	}
	return nil
}
