// Package asset loads image resources in the background.
package asset

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

//go:embed images/robot.png
var robotPNG []byte

// DefaultSource names the embedded robot image.
const DefaultSource = "embedded:robot.png"

// Sprite is an image that loads on its own goroutine. It satisfies
// runner.Sprite; drawing code checks Ready before using Image.
type Sprite struct {
	source string
	ready  atomic.Bool
	done   chan struct{}

	mu  sync.RWMutex
	img image.Image
	err error
}

// Load starts loading the PNG at path. An empty path loads the embedded
// robot.
func Load(path string) *Sprite {
	if path == "" {
		return LoadDefault()
	}
	return load(path, func() (io.ReadCloser, error) {
		return os.Open(path)
	})
}

// LoadDefault starts decoding the embedded robot.
func LoadDefault() *Sprite {
	return load(DefaultSource, func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(robotPNG)), nil
	})
}

func load(source string, open func() (io.ReadCloser, error)) *Sprite {
	s := &Sprite{
		source: source,
		done:   make(chan struct{}),
	}
	go s.run(open)
	return s
}

func (s *Sprite) run(open func() (io.ReadCloser, error)) {
	defer close(s.done)

	img, err := func() (image.Image, error) {
		rc, err := open()
		if err != nil {
			return nil, err
		}
		defer rc.Close()
		return Decode(rc)
	}()

	s.mu.Lock()
	s.img, s.err = img, err
	s.mu.Unlock()

	if err == nil {
		s.ready.Store(true)
	}
}

// Source returns the path or embedded name being loaded.
func (s *Sprite) Source() string {
	return s.source
}

// Ready reports whether the image decoded successfully.
func (s *Sprite) Ready() bool {
	return s.ready.Load()
}

// Wait blocks until loading finishes or ctx is done, and returns the load
// error.
func (s *Sprite) Wait(ctx context.Context) error {
	select {
	case <-s.done:
		return s.Err()
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Image returns the decoded image, or nil while loading or after a failure.
func (s *Sprite) Image() image.Image {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.img
}

// Err returns the load error, if any.
func (s *Sprite) Err() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// Decode reads a PNG image.
func Decode(r io.Reader) (image.Image, error) {
	img, err := png.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode sprite: %w", err)
	}
	return img, nil
}
