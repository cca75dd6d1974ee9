package config

import "math"

// Ramp tracks the current scroll speed and the score at which it next
// increases. The speed is multiplied once each time the score reaches the
// pending threshold, and the threshold then moves up by one step.
type Ramp struct {
	cfg    DifficultyConfig
	speed  float64
	nextAt int
}

// NewRamp creates a ramp at its starting speed.
func NewRamp(cfg DifficultyConfig) *Ramp {
	r := &Ramp{cfg: cfg}
	r.Reset()
	return r
}

// Reset returns the ramp to the base speed and first threshold.
func (r *Ramp) Reset() {
	r.speed = r.cfg.BaseSpeed
	r.nextAt = r.cfg.SpeedStep
}

// Speed returns the current scroll speed.
func (r *Ramp) Speed() float64 {
	return r.speed
}

// NextAt returns the score at which the next increase happens.
func (r *Ramp) NextAt() int {
	return r.nextAt
}

// IsEnabled returns whether speed progression is active.
func (r *Ramp) IsEnabled() bool {
	return r.cfg.Enabled && r.cfg.SpeedStep > 0
}

// Observe applies at most one increase for the given score and reports
// whether it happened.
func (r *Ramp) Observe(score int) bool {
	if !r.IsEnabled() || score < r.nextAt {
		return false
	}
	r.speed *= r.cfg.SpeedMultiplier
	r.nextAt += r.cfg.SpeedStep
	return true
}

// SpeedAt returns the speed a ramp reaches after observing every score up to
// and including score.
func (d DifficultyConfig) SpeedAt(score int) float64 {
	if !d.Enabled || d.SpeedStep <= 0 || score < d.SpeedStep {
		return d.BaseSpeed
	}
	steps := score / d.SpeedStep
	return d.BaseSpeed * math.Pow(d.SpeedMultiplier, float64(steps))
}
