package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/robo-runner/internal/core"
	"github.com/vovakirdan/robo-runner/internal/runner"
)

// Cell size of ebitenutil's built-in font.
const (
	debugGlyphW = 6
	debugGlyphH = 16
)

// scratchW fits the longest line the HUD prints.
const scratchW = 256

// ImageCanvas draws world-unit shapes onto an ebiten image.
type ImageCanvas struct {
	dst     *ebiten.Image
	scale   float64
	sprite  *spriteCache
	scratch *ebiten.Image
}

// NewImageCanvas creates a canvas with scale pixels per world unit.
func NewImageCanvas(scale float64, sprite *spriteCache) *ImageCanvas {
	return &ImageCanvas{
		scale:  scale,
		sprite: sprite,
	}
}

// SetTarget selects the image the next calls draw on.
func (c *ImageCanvas) SetTarget(dst *ebiten.Image) {
	c.dst = dst
}

func toRGBA(col core.Color) color.RGBA {
	r, g, b, a := col.RGBA()
	return color.RGBA{R: r, G: g, B: b, A: a}
}

func (c *ImageCanvas) px(v float64) float32 {
	return float32(v * c.scale)
}

func (c *ImageCanvas) Clear() {
	c.dst.Fill(color.White)
}

func (c *ImageCanvas) FillRect(b core.Box, col core.Color) {
	vector.DrawFilledRect(c.dst, c.px(b.X), c.px(b.Y), c.px(b.W), c.px(b.H), toRGBA(col), false)
}

func (c *ImageCanvas) FillCircle(cx, cy, r float64, col core.Color) {
	vector.DrawFilledCircle(c.dst, c.px(cx), c.px(cy), c.px(r), toRGBA(col), true)
}

func (c *ImageCanvas) DrawSprite(s runner.Sprite, b core.Box) {
	img := c.sprite.Image(s)
	if img == nil {
		c.FillRect(b, core.ColorTeal)
		return
	}

	size := img.Bounds().Size()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.W*c.scale/float64(size.X), b.H*c.scale/float64(size.Y))
	op.GeoM.Translate(b.X*c.scale, b.Y*c.scale)
	c.dst.DrawImage(img, op)
}

// Text draws s with its baseline at y. The debug font is white and comes
// in one size, so text goes through a scratch image that is tinted and
// scaled on the way out.
func (c *ImageCanvas) Text(x, y float64, s string, style runner.TextStyle) {
	c.printTinted(s, x*c.scale, y*c.scale, style.Size/debugGlyphH*c.scale, style.Color)
}

// printTinted draws s with its baseline at pixel (x, y).
func (c *ImageCanvas) printTinted(s string, x, y, zoom float64, col core.Color) {
	if c.scratch == nil {
		c.scratch = ebiten.NewImage(scratchW, debugGlyphH)
	}
	c.scratch.Clear()
	ebitenutil.DebugPrintAt(c.scratch, s, 0, 0)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(x, y-debugGlyphH*zoom)
	op.ColorScale.ScaleWithColor(toRGBA(col))
	c.dst.DrawImage(c.scratch, op)
}

// DrawButton draws a filled button with a centered label.
func (c *ImageCanvas) DrawButton(b core.Box, label string) {
	vector.DrawFilledRect(c.dst, c.px(b.X), c.px(b.Y), c.px(b.W), c.px(b.H), toRGBA(core.ColorTeal), false)
	vector.StrokeRect(c.dst, c.px(b.X), c.px(b.Y), c.px(b.W), c.px(b.H), 2, toRGBA(core.ColorBlack), false)

	w := float64(len(label)*debugGlyphW) * c.scale
	cx, cy := b.Center()
	c.printTinted(label, cx*c.scale-w/2, cy*c.scale+debugGlyphH*c.scale/2, c.scale, core.ColorWhite)
}
