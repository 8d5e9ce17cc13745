package core

// RuntimeConfig contains configuration passed to a game at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
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

// GameState represents the status a platform needs after each tick.
type GameState struct {
	Score    int  // Obstacle pairs passed this round
	GameOver bool // Whether the round has ended
	Paused   bool // Whether ticking is suspended
	Ticks    int  // Ticks simulated since the last reset
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// RoundEnded is true only on the tick that moved the round into game over.
	RoundEnded bool

	// Restarted is true when the tick honored a restart request.
	Restarted bool
}
