package window

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/robo-runner/internal/runner"
)

// imageSprite is a sprite that can hand over its pixels.
type imageSprite interface {
	runner.Sprite
	Image() image.Image
}

// spriteCache uploads a sprite to the GPU once it finishes loading.
type spriteCache struct {
	img *ebiten.Image
}

// Image returns the GPU copy of s, or nil while s is not ready.
func (c *spriteCache) Image(s runner.Sprite) *ebiten.Image {
	if c.img != nil {
		return c.img
	}
	src, ok := s.(imageSprite)
	if !ok || !src.Ready() || src.Image() == nil {
		return nil
	}
	c.img = ebiten.NewImageFromImage(src.Image())
	return c.img
}
