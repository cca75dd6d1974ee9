package runner

import (
	"fmt"

	"github.com/vovakirdan/robo-runner/internal/core"
)

// TextStyle selects the font size (world units) and color for Canvas.Text.
type TextStyle struct {
	Size  float64
	Color core.Color
}

// Text styles used by the HUD and overlays.
var (
	TextHUD    = TextStyle{Size: 16, Color: core.ColorBlack}
	TextBanner = TextStyle{Size: 32, Color: core.ColorRed}
)

// Canvas is a drawing surface addressed in world units. Implementations
// project world coordinates onto their own pixels or cells.
type Canvas interface {
	Clear()
	FillRect(b core.Box, c core.Color)
	FillCircle(cx, cy, r float64, c core.Color)
	DrawSprite(s Sprite, b core.Box)
	// Text draws s with its baseline at y, like a canvas fillText.
	Text(x, y float64, s string, style TextStyle)
}

// Discard is a Canvas that draws nothing.
var Discard Canvas = discard{}

type discard struct{}

func (discard) Clear()                                   {}
func (discard) FillRect(core.Box, core.Color)            {}
func (discard) FillCircle(_, _, _ float64, _ core.Color) {}
func (discard) DrawSprite(Sprite, core.Box)              {}
func (discard) Text(_, _ float64, _ string, _ TextStyle) {}

// Draw renders the session. On game over it also reveals the restart
// control.
func (e *Engine) Draw(c Canvas) {
	s := &e.s
	w, h := e.cfg.World.Width, e.cfg.World.Height
	groundY := e.groundY()

	c.Clear()
	c.FillRect(core.NewBox(0, groundY, w, h-groundY), core.ColorGray)

	if e.sprite != nil && e.sprite.Ready() {
		c.DrawSprite(e.sprite, s.Player.Box)
	} else {
		c.FillRect(s.Player.Box, core.ColorTeal)
	}

	for _, o := range s.Ground.All() {
		c.FillRect(o.Box, core.ColorFirebrick)
	}
	for _, o := range s.Flying.All() {
		cx, cy := o.Center()
		c.FillCircle(cx, cy, o.W/2, core.ColorOrange)
	}

	c.Text(10, 20, fmt.Sprintf("Score: %d", s.Score), TextHUD)
	c.Text(10, 40, fmt.Sprintf("High: %d", s.HighScore), TextHUD)

	if e.paused {
		c.Text(w/2-48, h/2, "Paused", TextBanner)
	}

	if s.GameOver {
		c.Text(w/2-80, h/2, "Game Over", TextBanner)
		s.RestartVisible = true
	}
}

// RestartButton returns the restart control's box in world units. Hosts
// draw and hit-test it while Session.RestartVisible is set.
func (e *Engine) RestartButton() core.Box {
	w, h := e.cfg.World.Width, e.cfg.World.Height
	const bw, bh = 120, 28
	return core.NewBox(w/2-bw/2, h/2+12, bw, bh)
}
