package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size their layout and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in canvas units (characters or pixels)
	ScreenH  int   // Viewport height in canvas units
	Aspect   int   // Canvas units per board cell horizontally, per unit vertically
	TickRate int   // Platform ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults for a terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		Aspect:   TerminalAspect,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score (game-defined)
	Paused   bool // Whether the game is paused
	GameOver bool // Whether the current run has ended
	Finished bool // Whether the platform should leave the game (e.g. all levels done)
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
