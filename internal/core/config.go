package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Simulation ticks per second (default 50, one tick per 20ms)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 50,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current total score
	Level    int  // Current level number
	GameOver bool // Whether the game has ended
	Won      bool // Whether the game ended with every level cleared
	Paused   bool // Whether the game is paused
}

// LevelRecord is the outcome of one level attempt, reported to the platform
// for persistence.
type LevelRecord struct {
	Level   int    // Level number
	Outcome string // "succeeded" or "failed"
	Reason  string // Failure reason, empty on success
	Points  int
	Ticks   int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState

	// Levels finished during this tick. Usually empty.
	Finished []LevelRecord
}
