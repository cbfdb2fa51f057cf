package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic setup.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Platform ticks per second (default 60)
	Seed     int64 // RNG seed for the board prefill
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

// Outcome values reported in GameState once a match is decided.
const (
	OutcomeNone     = ""
	OutcomeHuman    = "human"
	OutcomeComputer = "computer"
	OutcomeDraw     = "draw"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score         int    // Human score
	OpponentScore int    // Computer score
	Moves         int    // Accepted human moves so far
	GameOver      bool   // Whether the match has ended
	Paused        bool   // Whether the game is paused
	Assisted      bool   // Whether auto-solve colored part of the board
	Outcome       string // One of the Outcome constants
	Match         uint64 // Changes whenever a restart or new board begins a match
}

// StepResult is returned by Game.Step() after each platform tick.
type StepResult struct {
	State GameState
}
