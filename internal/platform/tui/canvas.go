package tui

import (
	"image"
	"math"

	"github.com/vovakirdan/robo-runner/internal/core"
	"github.com/vovakirdan/robo-runner/internal/runner"
)

// Fill runes per color. Anything unlisted is drawn solid.
var fillRunes = map[core.Color]rune{
	core.ColorGray:      '▓',
	core.ColorFirebrick: '█',
	core.ColorTeal:      '█',
}

// imageSprite is a sprite that can hand over its pixels.
type imageSprite interface {
	runner.Sprite
	Image() image.Image
}

// ScreenCanvas draws world-unit shapes onto a cell grid.
type ScreenCanvas struct {
	screen *core.Screen
	worldW float64
	worldH float64
}

// NewScreenCanvas projects a worldW x worldH world onto screen.
func NewScreenCanvas(screen *core.Screen, worldW, worldH float64) *ScreenCanvas {
	return &ScreenCanvas{screen: screen, worldW: worldW, worldH: worldH}
}

// Scale returns columns and rows per world unit.
func (c *ScreenCanvas) Scale() (sx, sy float64) {
	return float64(c.screen.Width()) / c.worldW, float64(c.screen.Height()) / c.worldH
}

// ToCells maps a world box to the cells it touches.
func (c *ScreenCanvas) ToCells(b core.Box) core.Rect {
	sx, sy := c.Scale()
	return b.Scale(sx, sy)
}

// ToWorld maps a cell to the world point at its center.
func (c *ScreenCanvas) ToWorld(col, row int) (x, y float64) {
	sx, sy := c.Scale()
	return (float64(col) + 0.5) / sx, (float64(row) + 0.5) / sy
}

func (c *ScreenCanvas) Clear() {
	c.screen.Clear()
}

func (c *ScreenCanvas) FillRect(b core.Box, col core.Color) {
	fill, ok := fillRunes[col]
	if !ok {
		fill = '█'
	}
	c.screen.DrawRect(c.ToCells(b), fill, col)
}

// FillCircle marks every cell whose center lies inside the circle. A circle
// smaller than a cell still marks the cell holding its center.
func (c *ScreenCanvas) FillCircle(cx, cy, r float64, col core.Color) {
	bounds := c.ToCells(core.NewBox(cx-r, cy-r, 2*r, 2*r))
	cell := core.Cell{Rune: '●', Color: col}

	drawn := false
	for row := bounds.Y; row < bounds.Bottom(); row++ {
		for x := bounds.X; x < bounds.Right(); x++ {
			wx, wy := c.ToWorld(x, row)
			if math.Hypot(wx-cx, wy-cy) <= r {
				c.screen.SetCell(x, row, cell)
				drawn = true
			}
		}
	}

	if !drawn {
		sx, sy := c.Scale()
		c.screen.SetCell(int(math.Floor(cx*sx)), int(math.Floor(cy*sy)), cell)
	}
}

// DrawSprite samples the sprite once per cell and paints opaque samples in
// the nearest palette color.
func (c *ScreenCanvas) DrawSprite(s runner.Sprite, b core.Box) {
	src, ok := s.(imageSprite)
	if !ok || src.Image() == nil {
		c.FillRect(b, core.ColorTeal)
		return
	}

	img := src.Image()
	ib := img.Bounds()
	cells := c.ToCells(b)

	for row := 0; row < cells.H; row++ {
		for col := 0; col < cells.W; col++ {
			px := ib.Min.X + (2*col+1)*ib.Dx()/(2*cells.W)
			py := ib.Min.Y + (2*row+1)*ib.Dy()/(2*cells.H)

			r, g, bl, a := img.At(px, py).RGBA()
			if a < 0x8000 {
				continue
			}
			c.screen.SetCell(cells.X+col, cells.Y+row, core.Cell{
				Rune:  '█',
				Color: nearestColor(uint8(r>>8), uint8(g>>8), uint8(bl>>8)),
			})
		}
	}
}

// Text writes s so that its baseline sits on world y.
func (c *ScreenCanvas) Text(x, y float64, s string, style runner.TextStyle) {
	sx, sy := c.Scale()
	row := core.Clamp(int(math.Ceil(y*sy))-1, 0, c.screen.Height()-1)
	c.screen.DrawText(int(x*sx), row, s, style.Color)
}

// DrawButton draws a label over the world box b, framed when the box is at
// least three rows tall.
func (c *ScreenCanvas) DrawButton(b core.Box, label string, col core.Color) {
	r := c.ToCells(b)
	c.screen.DrawRect(r, ' ', col)
	if r.H >= 3 {
		c.screen.DrawBox(r, col)
	}
	c.screen.DrawText(r.X+(r.W-len([]rune(label)))/2, r.Y+r.H/2, label, col)
}

var paletteColors = []core.Color{
	core.ColorRed, core.ColorGreen, core.ColorYellow, core.ColorBlue,
	core.ColorMagenta, core.ColorCyan, core.ColorWhite, core.ColorBrightRed,
	core.ColorOrange, core.ColorGray, core.ColorTeal, core.ColorFirebrick,
}

func nearestColor(r, g, b uint8) core.Color {
	best := core.ColorWhite
	bestDist := math.MaxInt
	for _, col := range paletteColors {
		pr, pg, pb, _ := col.RGBA()
		dr, dg, db := int(r)-int(pr), int(g)-int(pg), int(b)-int(pb)
		if d := dr*dr + dg*dg + db*db; d < bestDist {
			best, bestDist = col, d
		}
	}
	return best
}
