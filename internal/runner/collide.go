package runner

import "github.com/vovakirdan/robo-runner/internal/core"

// Collides reports whether a and b overlap once a's horizontal extent is
// shrunk by margin on each side. Edges touching after the shrink count as a
// hit horizontally; vertically the overlap must be strict.
func Collides(a, b core.Box, margin float64) bool {
	return a.Right()-margin >= b.X &&
		a.X+margin <= b.Right() &&
		a.Y < b.Bottom() &&
		a.Bottom() > b.Y
}
