// Package audio synthesizes the runner's sound effects.
package audio

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// SampleRate is the output rate for all effects.
const SampleRate = beep.SampleRate(48000)

// Synth plays effects through the system speaker. Until Initialize succeeds
// every Play call is silent.
type Synth struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	master      float64
	initialized bool
	logger      *log.Logger
}

// NewSynth creates a synth with a master volume in [0, 1].
func NewSynth(master float64, logger *log.Logger) *Synth {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Synth{
		mixer:  &beep.Mixer{},
		master: master,
		logger: logger,
	}
}

// Initialize opens the speaker. A failure leaves the synth silent; the
// error is returned so callers can report it.
func (s *Synth) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if err := speaker.Init(SampleRate, SampleRate.N(50*time.Millisecond)); err != nil {
		s.logger.Warn("audio unavailable, continuing without sound", "error", err)
		return err
	}

	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Enabled reports whether the speaker is open.
func (s *Synth) Enabled() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.initialized
}

// Cleanup silences pending effects.
func (s *Synth) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}

// PlayJump plays the jump chirp.
func (s *Synth) PlayJump() {
	s.play(JumpTone)
}

// PlayGameOver plays the crash buzz.
func (s *Synth) PlayGameOver() {
	s.play(GameOverTone)
}

func (s *Synth) play(t Tone) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}

	speaker.Lock()
	s.mixer.Add(NewToneStreamer(t, s.master, SampleRate))
	speaker.Unlock()
}

// Nop discards every effect.
type Nop struct{}

func (Nop) PlayJump()     {}
func (Nop) PlayGameOver() {}
