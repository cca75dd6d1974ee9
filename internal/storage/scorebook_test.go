package storage

import (
	"testing"

	"github.com/vovakirdan/robo-runner/internal/config"
	"github.com/vovakirdan/robo-runner/internal/core"
	"github.com/vovakirdan/robo-runner/internal/runner"
)

var _ runner.ScoreRecorder = (*ScoreBook)(nil)

func TestScoreBook(t *testing.T) {
	store := openTestStore(t)
	book := NewScoreBook(store, runner.GameID)

	if book.GameID() != "runner" {
		t.Errorf("GameID() = %q", book.GameID())
	}

	for _, score := range []int{40, 90, 70} {
		if err := book.RecordScore(score); err != nil {
			t.Fatalf("RecordScore(%d) failed: %v", score, err)
		}
	}

	high, err := book.HighScore()
	if err != nil || high != 90 {
		t.Errorf("HighScore() = %d, %v; expected 90", high, err)
	}

	top, err := book.Top(2)
	if err != nil || len(top) != 2 || top[0].Score != 90 || top[1].Score != 70 {
		t.Errorf("Top(2) = %v, %v", top, err)
	}

	rank, err := book.Rank(80)
	if err != nil || rank != 2 {
		t.Errorf("Rank(80) = %d, %v; expected 2", rank, err)
	}

	stats, err := book.Stats()
	if err != nil || stats.GamesCount != 3 {
		t.Errorf("Stats() = %+v, %v", stats, err)
	}

	n, err := book.Clear()
	if err != nil || n != 3 {
		t.Errorf("Clear() = %d, %v; expected 3", n, err)
	}
}

func TestScoreBookRecordsEngineGameOver(t *testing.T) {
	store := openTestStore(t)
	book := NewScoreBook(store, runner.GameID)

	runtime := core.DefaultConfig()
	runtime.Seed = 11

	for round := 0; round < 3; round++ {
		high, err := book.HighScore()
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}

		e := runner.New(config.DefaultRunnerConfig(), runtime, runner.Options{
			Recorder:  book,
			HighScore: high,
		})
		for !e.Session().GameOver {
			e.Tick()
		}

		saved, err := book.HighScore()
		if err != nil {
			t.Fatalf("HighScore() failed: %v", err)
		}
		if saved != e.Session().HighScore {
			t.Errorf("round %d: stored high %d, engine high %d", round, saved, e.Session().HighScore)
		}
	}

	top, _ := book.Top(10)
	if len(top) != 3 {
		t.Errorf("expected one saved score per game over, got %d", len(top))
	}
}
