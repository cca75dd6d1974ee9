package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/robo-runner/internal/asset"
	"github.com/vovakirdan/robo-runner/internal/platform/tui"
	"github.com/vovakirdan/robo-runner/internal/runner"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the runner in the terminal.

Controls:
  Space/Up/W/K - Jump (twice for a double jump)
  Mouse click  - Jump, or restart on the Restart button
  P/Esc        - Pause
  R/Enter      - Restart (after game over)
  Tab          - Scores (after game over)
  Ctrl+S       - Screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start slower, speeds up every 500 points
  normal - Default speed, speeds up every 500 points
  hard   - Start faster, speeds up every 500 points
  fixed  - No speed-ups

Examples:
  runner play
  runner play --difficulty easy
  runner play --config ./my-runner.yaml
  runner play --mute --log-file /tmp/runner.log`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file while playing")
}

func runPlay(_ *cobra.Command, _ []string) {
	if err := playGame(); err != nil {
		fail("%v", err)
	}
}

func playGame() error {
	logger := newLogger(os.Stderr, "runner")

	cfg, err := loadRunnerConfig()
	if err != nil {
		return err
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	rc := runtimeConfig(width, height)

	store, book := openScoreBook(logger)
	if store != nil {
		defer store.Close()
	}

	sound, cleanup := newSound(logger)
	defer cleanup()

	// The alt screen owns the terminal while playing
	sessionLogger, closeLog, err := playLogger()
	if err != nil {
		return err
	}
	defer closeLog()

	sprite := asset.Load(flagSprite)
	engine := runner.New(cfg, rc, engineOptions(book, sound, sprite, sessionLogger, false))

	opts := tui.Options{Logger: sessionLogger}
	if book != nil {
		opts.Board = book
	}

	if err := tui.Run(engine, rc, opts); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	if err := sprite.Err(); err != nil {
		logger.Warn("sprite failed to load", "source", sprite.Source(), "error", err)
	}
	return nil
}

// playLogger returns the in-game logger: the --log-file if given, otherwise
// a discarding one.
func playLogger() (*log.Logger, func(), error) {
	if flagLogFile == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return newLogger(f, "runner"), func() { f.Close() }, nil
}
