package runner

// Autopilot plays the runner by timing jumps over ground obstacles. It
// ignores flying obstacles, so it is a demo driver rather than a solver.
type Autopilot struct {
	// LeadFrames is how many frames before horizontal contact a grounded
	// jump starts. Ten frames puts the jump apex over the obstacle at
	// default gravity and jump height.
	LeadFrames float64
}

// NewAutopilot returns an autopilot tuned for the default physics.
func NewAutopilot() *Autopilot {
	return &Autopilot{LeadFrames: 10}
}

// Decide reports whether the engine should jump this frame.
func (a *Autopilot) Decide(e *Engine) bool {
	s := e.Session()
	if s.GameOver {
		return false
	}

	p := s.Player
	margin := e.cfg.Collision.Margin
	speed := s.Speed()

	for _, o := range s.Ground.All() {
		// Distance until the shrunken player box reaches the obstacle
		gap := o.X - (p.Right() - margin)
		if o.Right() < p.X+margin {
			continue // Already passed
		}

		if e.Grounded() {
			return gap >= 0 && gap <= speed*a.LeadFrames
		}

		// Falling onto the obstacle: spend the spare jump
		if p.VY > 0 && p.Jumps < e.cfg.Physics.MaxJumps && gap <= speed*2 {
			return p.Bottom()+p.VY*2 > o.Y
		}
		return false
	}
	return false
}
