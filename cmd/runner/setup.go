package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robo-runner/internal/audio"
	"github.com/vovakirdan/robo-runner/internal/config"
	"github.com/vovakirdan/robo-runner/internal/core"
	"github.com/vovakirdan/robo-runner/internal/runner"
	"github.com/vovakirdan/robo-runner/internal/storage"
)

// newLogger builds a logger at the --log-level threshold.
// Unknown levels fall back to info.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// loadRunnerConfig reads the YAML config and applies --difficulty.
func loadRunnerConfig() (config.RunnerConfig, error) {
	cfg, err := config.LoadRunner(flagConfig)
	if err != nil {
		return config.RunnerConfig{}, err
	}
	if flagDifficulty != "" {
		preset := config.ParsePreset(flagDifficulty)
		if preset == "" {
			return config.RunnerConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
		}
		config.ApplyPreset(&cfg, preset)
	}
	return cfg, nil
}

// runtimeConfig resolves --fps and --seed for a host of the given size.
func runtimeConfig(width, height int) core.RuntimeConfig {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     seed,
	}
}

// openScoreBook opens score storage. On failure the game still works, so
// the error is only logged and the returned book is nil.
func openScoreBook(logger *log.Logger) (*storage.Store, *storage.ScoreBook) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		return nil, nil
	}
	return store, storage.NewScoreBook(store, runner.GameID)
}

// newSound opens the speaker unless --mute is set. The returned cleanup is
// always safe to call.
func newSound(logger *log.Logger) (runner.Sound, func()) {
	if flagMute {
		return audio.Nop{}, func() {}
	}
	synth := audio.NewSynth(1, logger)
	if err := synth.Initialize(); err != nil {
		return audio.Nop{}, func() {}
	}
	return synth, synth.Cleanup
}

// engineOptions assembles the engine collaborators around an optional book.
// Attract sessions still show the stored high score but never add to it.
func engineOptions(book *storage.ScoreBook, sound runner.Sound, sprite runner.Sprite, logger *log.Logger, attract bool) runner.Options {
	opts := runner.Options{
		Sound:   sound,
		Sprite:  sprite,
		Logger:  logger,
		Attract: attract,
	}
	if book == nil {
		return opts
	}
	opts.Recorder = book
	high, err := book.HighScore()
	if err != nil {
		logger.Warn("could not load high score", "error", err)
		return opts
	}
	opts.HighScore = high
	return opts
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
