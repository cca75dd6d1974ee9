package runner

import (
	"github.com/vovakirdan/robo-runner/internal/config"
	"github.com/vovakirdan/robo-runner/internal/core"
)

// ObstacleKind distinguishes the two hazard types.
type ObstacleKind int

const (
	KindGround ObstacleKind = iota // Rectangle standing on the ground
	KindFlying                     // Circle inscribed in its box, above the ground
)

// String returns a human-readable name for the kind.
func (k ObstacleKind) String() string {
	switch k {
	case KindGround:
		return "ground"
	case KindFlying:
		return "flying"
	default:
		return "unknown"
	}
}

// Obstacle is a hazard scrolling leftward.
type Obstacle struct {
	core.Box
	Kind ObstacleKind
}

// Player is the robot.
type Player struct {
	core.Box
	VY    float64 // Vertical velocity, positive is down
	Jumps int     // Jumps used since the last ground contact
}

// Lane is an obstacle queue ordered by spawn time. Obstacles in one lane move
// at the same speed, so the front is always the leftmost and the first to
// leave the screen.
type Lane struct {
	items []Obstacle
}

// Push appends a newly spawned obstacle.
func (l *Lane) Push(o Obstacle) {
	l.items = append(l.items, o)
}

// Len returns the number of live obstacles.
func (l *Lane) Len() int {
	return len(l.items)
}

// Front returns the oldest obstacle.
func (l *Lane) Front() (Obstacle, bool) {
	if len(l.items) == 0 {
		return Obstacle{}, false
	}
	return l.items[0], true
}

// All returns the obstacles oldest first. The slice is only valid until the
// next mutation.
func (l *Lane) All() []Obstacle {
	return l.items
}

// Advance moves every obstacle left by dx.
func (l *Lane) Advance(dx float64) {
	for i := range l.items {
		l.items[i].X -= dx
	}
}

// PruneFront removes the oldest obstacle once it is fully off the left edge.
// Only the front is examined; at most one obstacle leaves per call.
func (l *Lane) PruneFront() bool {
	front, ok := l.Front()
	if !ok || front.Right() >= 0 {
		return false
	}
	l.items[0] = Obstacle{}
	l.items = l.items[1:]
	return true
}

// Clear drops all obstacles, keeping the backing array.
func (l *Lane) Clear() {
	clear(l.items)
	l.items = l.items[:0]
}

// Session is the complete mutable state of one play-through plus the high
// score that survives restarts.
type Session struct {
	Player         Player
	Ground         Lane
	Flying         Lane
	Score          int
	HighScore      int
	GameOver       bool
	RestartVisible bool // Restart control shown; set by Draw on game over
	Frames         int  // Frames simulated since the last InitGame

	groundCounter  int
	flyCounter     int
	spawnThreshold int
	ramp           *config.Ramp
}

// Speed returns the current scroll speed in world units per frame.
func (s *Session) Speed() float64 {
	return s.ramp.Speed()
}

// NextSpeedAt returns the score at which the speed next increases.
func (s *Session) NextSpeedAt() int {
	return s.ramp.NextAt()
}

// SpawnThreshold returns the frames between the previous ground spawn and
// the next one.
func (s *Session) SpawnThreshold() int {
	return s.spawnThreshold
}
