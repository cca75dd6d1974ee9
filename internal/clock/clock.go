// Package clock schedules fixed-rate game frames.
package clock

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// StepFunc runs one frame. Returning false ends the loop.
type StepFunc func() bool

// Ticker calls a step function at a fixed rate.
type Ticker struct {
	rate   int
	frames atomic.Int64
	quit   chan struct{}
	once   sync.Once
}

// NewTicker creates a ticker for rate frames per second. A rate of zero or
// less runs frames back to back.
func NewTicker(rate int) *Ticker {
	return &Ticker{
		rate: rate,
		quit: make(chan struct{}),
	}
}

// Interval returns the time between frames, or zero when unthrottled.
func (t *Ticker) Interval() time.Duration {
	if t.rate <= 0 {
		return 0
	}
	return time.Second / time.Duration(t.rate)
}

// Frames returns how many frames have run.
func (t *Ticker) Frames() int {
	return int(t.frames.Load())
}

// Stop ends Run. Safe to call more than once and from any goroutine.
func (t *Ticker) Stop() {
	t.once.Do(func() { close(t.quit) })
}

// Run blocks, calling step every interval until Stop is called, ctx is
// done, or step returns false. It returns ctx.Err() when the context ended
// the loop and nil otherwise.
func (t *Ticker) Run(ctx context.Context, step StepFunc) error {
	if t.rate <= 0 {
		return t.runUnthrottled(ctx, step)
	}

	ticker := time.NewTicker(t.Interval())
	defer ticker.Stop()

	for {
		select {
		case <-t.quit:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			t.frames.Add(1)
			if !step() {
				return nil
			}
		}
	}
}

func (t *Ticker) runUnthrottled(ctx context.Context, step StepFunc) error {
	for {
		select {
		case <-t.quit:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		t.frames.Add(1)
		if !step() {
			return nil
		}
	}
}

// Manual advances frames synchronously. Tests use it where wall-clock
// timing would make results flaky.
type Manual struct {
	frames int
}

// Advance runs up to n frames and returns how many ran. It stops early when
// step returns false.
func (m *Manual) Advance(n int, step StepFunc) int {
	ran := 0
	for ran < n {
		ran++
		m.frames++
		if !step() {
			break
		}
	}
	return ran
}

// Frames returns the total frames advanced.
func (m *Manual) Frames() int {
	return m.frames
}
