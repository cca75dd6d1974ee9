package asset

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	t.Cleanup(cancel)
	return ctx
}

func TestLoadDefault(t *testing.T) {
	s := LoadDefault()

	if err := s.Wait(waitCtx(t)); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if !s.Ready() {
		t.Fatal("embedded sprite should be ready")
	}
	if s.Source() != DefaultSource {
		t.Errorf("Source() = %q, expected %q", s.Source(), DefaultSource)
	}

	b := s.Image().Bounds()
	if b.Dx() != 48 || b.Dy() != 48 {
		t.Errorf("robot is %dx%d, expected 48x48", b.Dx(), b.Dy())
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	s := Load("")
	if s.Source() != DefaultSource {
		t.Errorf("Source() = %q, expected embedded default", s.Source())
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.png")

	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	f.Close()

	s := Load(path)
	if err := s.Wait(waitCtx(t)); err != nil {
		t.Fatalf("Wait() error = %v", err)
	}
	if !s.Ready() {
		t.Fatal("sprite should be ready")
	}
	if got := s.Image().Bounds().Dx(); got != 4 {
		t.Errorf("width = %d, expected 4", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s := Load(filepath.Join(t.TempDir(), "missing.png"))

	err := s.Wait(waitCtx(t))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Wait() error = %v, expected not-exist", err)
	}
	if s.Ready() || s.Image() != nil {
		t.Error("failed sprite should stay not ready")
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.png")
	if err := os.WriteFile(path, []byte("not a png"), 0o644); err != nil {
		t.Fatal(err)
	}

	s := Load(path)
	if err := s.Wait(waitCtx(t)); err == nil {
		t.Fatal("expected decode error")
	}
	if s.Ready() {
		t.Error("corrupt sprite should not be ready")
	}
}
