package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/robo-runner/internal/runner"
	"github.com/vovakirdan/robo-runner/internal/storage"
)

func testSSHServer(t *testing.T, book *storage.ScoreBook) *SSHServer {
	t.Helper()

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, SessionDeps{Book: book, Logger: log.New(io.Discard)})
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	return srv
}

func TestNewSSHServerCreatesKeyDir(t *testing.T) {
	srv := testSSHServer(t, nil)

	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if _, err := os.Stat(filepath.Dir(srv.config.HostKeyPath)); err != nil {
		t.Errorf("host key directory missing: %v", err)
	}
}

func TestSessionModelsAreIndependent(t *testing.T) {
	srv := testSSHServer(t, nil)

	a := srv.NewSessionModel("alice", 80, 24)
	b := srv.NewSessionModel("bob", 100, 30)

	if a.Engine() == b.Engine() {
		t.Fatal("sessions should not share an engine")
	}
	if a.screen.Width() != 80 || a.screen.Height() != 23 {
		t.Errorf("alice screen = %dx%d, expected 80x23", a.screen.Width(), a.screen.Height())
	}
	if a.opts.Board != nil {
		t.Error("a server without storage should not offer a scoreboard")
	}

	runUntilGameOver(t, a)
	if b.Engine().Session().GameOver {
		t.Error("game over leaked into another session")
	}
}

func TestSessionsShareScoreBook(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	book := storage.NewScoreBook(store, runner.GameID)
	if err := book.RecordScore(321); err != nil {
		t.Fatalf("RecordScore: %v", err)
	}

	srv := testSSHServer(t, book)

	first := srv.NewSessionModel("alice", 80, 24)
	if got := first.Engine().State().HighScore; got != 321 {
		t.Errorf("HighScore = %d, expected the stored 321", got)
	}
	if first.opts.Board == nil {
		t.Error("scoreboard should be available with storage")
	}

	first = runUntilGameOver(t, first)
	final := first.Engine().State().Score

	stats, err := book.Stats()
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.GamesCount != 2 {
		t.Errorf("GamesCount = %d, expected 2 after one finished session", stats.GamesCount)
	}

	first, _ = update(t, first, keyMsg("tab"))
	rank := 1
	if final < 321 {
		rank = 2
	}
	if want := fmt.Sprintf("Your run: %d (Rank #%d)", final, rank); !strings.Contains(first.View(), want) {
		t.Errorf("scoreboard should show %q", want)
	}

	second := srv.NewSessionModel("bob", 80, 24)
	if got := second.Engine().State().HighScore; got != max(321, final) {
		t.Errorf("second session HighScore = %d, expected %d", got, max(321, final))
	}
}
