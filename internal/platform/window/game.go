// Package window hosts the runner in a desktop window with Ebitengine.
package window

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/robo-runner/internal/core"
	"github.com/vovakirdan/robo-runner/internal/runner"
)

// attractRestartFrames is how long the autopilot lingers on game over.
const attractRestartFrames = 120

// Options configures the window host.
type Options struct {
	Scale     float64 // Pixels per world unit; defaults to 1
	TickRate  int     // Updates per second; defaults to 60
	Autopilot bool    // Attract mode: the computer plays and restarts
	Logger    *log.Logger
}

// Controls is one frame of raw device state.
type Controls struct {
	Jump    bool
	Restart bool
	Pause   bool
	Quit    bool
	Click   bool
	CursorX int
	CursorY int
}

// Game implements ebiten.Game around a runner engine.
type Game struct {
	engine    *runner.Engine
	canvas    *ImageCanvas
	opts      Options
	autopilot *runner.Autopilot
	overFor   int
	logger    *log.Logger
}

// NewGame wraps engine for ebiten.
func NewGame(engine *runner.Engine, opts Options) *Game {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.TickRate <= 0 {
		opts.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		engine: engine,
		canvas: NewImageCanvas(opts.Scale, &spriteCache{}),
		opts:   opts,
		logger: logger,
	}
	if opts.Autopilot {
		g.autopilot = runner.NewAutopilot()
	}
	return g
}

// readControls polls ebiten's input state.
func readControls() Controls {
	x, y := ebiten.CursorPosition()
	return Controls{
		Jump: inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
			inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) ||
			inpututil.IsKeyJustPressed(ebiten.KeyW),
		Restart: inpututil.IsKeyJustPressed(ebiten.KeyR) ||
			inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Pause: inpututil.IsKeyJustPressed(ebiten.KeyP),
		Quit: inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
			inpututil.IsKeyJustPressed(ebiten.KeyQ),
		Click:   inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		CursorX: x,
		CursorY: y,
	}
}

// Input turns raw controls into an engine input frame. A click on the
// visible restart button restarts; any other click jumps.
func (g *Game) Input(c Controls) core.InputFrame {
	in := core.NewInputFrame()
	s := g.engine.Session()

	if c.Jump {
		in.Set(core.ActionJump)
	}
	if c.Restart {
		in.Set(core.ActionRestart)
	}
	if c.Pause {
		in.Set(core.ActionPause)
	}

	if c.Click {
		wx := float64(c.CursorX) / g.opts.Scale
		wy := float64(c.CursorY) / g.opts.Scale
		if s.RestartVisible {
			if g.engine.RestartButton().ContainsPoint(wx, wy) {
				in.Set(core.ActionRestart)
			}
		} else {
			in.Set(core.ActionJump)
		}
	}

	if g.autopilot != nil {
		if g.autopilot.Decide(g.engine) {
			in.Set(core.ActionJump)
		}
		if s.GameOver {
			g.overFor++
			if g.overFor >= attractRestartFrames {
				in.Set(core.ActionRestart)
			}
		} else {
			g.overFor = 0
		}
	}

	return in
}

// Update advances the game by one tick.
func (g *Game) Update() error {
	c := readControls()
	if c.Quit {
		return ebiten.Termination
	}

	result := g.engine.Step(g.Input(c))
	if result.Crashed {
		g.logger.Debug("run ended", "score", result.State.Score, "high", result.State.HighScore)
	}
	return nil
}

// Draw renders the current frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.SetTarget(screen)
	g.engine.Draw(g.canvas)

	if g.engine.Session().RestartVisible {
		g.canvas.DrawButton(g.engine.RestartButton(), "Restart")
	}
}

// Layout returns the fixed logical screen size.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.Size()
}

// Size returns the window size in pixels.
func (g *Game) Size() (int, int) {
	w := g.engine.Config().World
	return int(w.Width * g.opts.Scale), int(w.Height * g.opts.Scale)
}

// Run opens the window and blocks until it closes.
func Run(engine *runner.Engine, opts Options) error {
	g := NewGame(engine, opts)

	w, h := g.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(runner.Title)
	ebiten.SetTPS(g.opts.TickRate)

	g.logger.Info("window opened", "width", w, "height", h, "tps", g.opts.TickRate)
	return ebiten.RunGame(g)
}
