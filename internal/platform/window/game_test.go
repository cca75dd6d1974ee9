package window

import (
	"testing"

	"github.com/vovakirdan/robo-runner/internal/config"
	"github.com/vovakirdan/robo-runner/internal/core"
	"github.com/vovakirdan/robo-runner/internal/runner"
)

func newTestGame(opts Options) *Game {
	rc := core.DefaultConfig()
	rc.Seed = 5
	return NewGame(runner.New(config.DefaultRunnerConfig(), rc, runner.Options{}), opts)
}

func endRun(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 1000 && !g.engine.Session().GameOver; i++ {
		g.engine.Tick()
	}
	g.engine.Draw(runner.Discard)
	if !g.engine.Session().RestartVisible {
		t.Fatal("restart control should be visible")
	}
}

func TestGameSize(t *testing.T) {
	tests := []struct {
		scale float64
		w, h  int
	}{
		{0, 800, 200},
		{1, 800, 200},
		{1.5, 1200, 300},
	}
	for _, tt := range tests {
		w, h := newTestGame(Options{Scale: tt.scale}).Size()
		if w != tt.w || h != tt.h {
			t.Errorf("scale %v: Size() = %dx%d, expected %dx%d", tt.scale, w, h, tt.w, tt.h)
		}
	}
}

func TestGameInputKeys(t *testing.T) {
	g := newTestGame(Options{})

	in := g.Input(Controls{Jump: true, Pause: true})
	if !in.Has(core.ActionJump) || !in.Has(core.ActionPause) || in.Has(core.ActionRestart) {
		t.Errorf("unexpected frame for jump+pause: %+v", in.Actions)
	}

	in = g.Input(Controls{})
	if len(in.Actions) != 0 {
		t.Errorf("idle controls produced %+v", in.Actions)
	}
}

func TestGameInputClickJumps(t *testing.T) {
	g := newTestGame(Options{Scale: 2})

	in := g.Input(Controls{Click: true, CursorX: 10, CursorY: 10})
	if !in.Has(core.ActionJump) {
		t.Error("click while playing should jump")
	}
}

func TestGameInputClickRestartButton(t *testing.T) {
	g := newTestGame(Options{Scale: 2})
	endRun(t, g)

	// Button covers world (340, 112)-(460, 140), pixels doubled
	in := g.Input(Controls{Click: true, CursorX: 800, CursorY: 250})
	if !in.Has(core.ActionRestart) || in.Has(core.ActionJump) {
		t.Errorf("click on button = %+v, expected restart only", in.Actions)
	}

	in = g.Input(Controls{Click: true, CursorX: 10, CursorY: 10})
	if len(in.Actions) != 0 {
		t.Errorf("click beside button = %+v, expected nothing", in.Actions)
	}
}

func TestGameAttractModeRestarts(t *testing.T) {
	g := newTestGame(Options{Autopilot: true})
	endRun(t, g)

	for i := 1; i < attractRestartFrames; i++ {
		if g.Input(Controls{}).Has(core.ActionRestart) {
			t.Fatalf("restarted after %d frames, expected %d", i, attractRestartFrames)
		}
	}
	if !g.Input(Controls{}).Has(core.ActionRestart) {
		t.Error("attract mode should restart after lingering on game over")
	}
}
