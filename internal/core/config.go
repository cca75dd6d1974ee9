package core

// RuntimeConfig contains configuration passed to the game at initialization.
// Hosts use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in host units (terminal cells or window pixels)
	ScreenH  int   // Screen height in host units
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by State() to communicate status to the platform.
type GameState struct {
	Score     int     // Current score
	HighScore int     // Best score known to the session
	Speed     float64 // Current scroll speed in world units per frame
	GameOver  bool    // Whether the game has ended
	Paused    bool    // Whether the game is paused
}

// StepResult is returned after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State   GameState
	Jumped  bool // A jump was applied this tick
	Crashed bool // The tick ended the game
	SpeedUp bool // The tick crossed a speed threshold
}
