package main

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robo-runner/internal/audio"
	"github.com/vovakirdan/robo-runner/internal/clock"
	"github.com/vovakirdan/robo-runner/internal/config"
	"github.com/vovakirdan/robo-runner/internal/core"
	"github.com/vovakirdan/robo-runner/internal/runner"
	"github.com/vovakirdan/robo-runner/internal/storage"
)

func TestEngineOptionsRecording(t *testing.T) {
	tests := []struct {
		name     string
		attract  bool
		expected int // Runs stored after one game over
	}{
		{"player", false, 2},
		{"attract", true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
			if err != nil {
				t.Fatalf("Open: %v", err)
			}
			defer store.Close()

			book := storage.NewScoreBook(store, runner.GameID)
			if err := book.RecordScore(40); err != nil {
				t.Fatalf("RecordScore: %v", err)
			}

			opts := engineOptions(book, audio.Nop{}, nil, log.New(io.Discard), tt.attract)
			if opts.HighScore != 40 {
				t.Errorf("HighScore = %d, expected the stored 40", opts.HighScore)
			}

			e := runner.New(config.DefaultRunnerConfig(), core.RuntimeConfig{Seed: 9}, opts)
			var clk clock.Manual
			clk.Advance(5000, func() bool {
				return !e.Step(core.NewInputFrame()).State.GameOver
			})
			if !e.Session().GameOver {
				t.Fatal("game did not end")
			}

			stats, err := book.Stats()
			if err != nil {
				t.Fatalf("Stats: %v", err)
			}
			if stats.GamesCount != tt.expected {
				t.Errorf("GamesCount = %d, expected %d", stats.GamesCount, tt.expected)
			}
			if tt.attract && stats.HighScore != 40 {
				t.Errorf("attract run changed the stored best to %d", stats.HighScore)
			}
		})
	}
}
