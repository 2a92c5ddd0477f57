package core

import "time"

// RuntimeConfig is passed to a game when it starts or restarts.
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

// TickDuration returns the wall-clock length of one tick.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// GameState is the status a game reports to the platform.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the run has ended
	Won      bool // Whether the run ended by clearing every level
	Paused   bool // Whether the game is paused
}

// LevelResult describes one decided level attempt.
type LevelResult struct {
	PackID   string
	Level    int // zero-based level index within the pack
	Won      bool
	Coins    int // coins collected during the attempt
	Duration time.Duration
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// Finished is set on the tick a level attempt is finished.
	Finished *LevelResult

	// Err carries a failure the game could not recover from during the tick.
	Err error
}

// Game is what the terminal platform drives. Games hold pure logic; the
// platform handles timing, input mapping and output.
type Game interface {
	// ID returns a stable identifier, used for score storage.
	ID() string

	// Title returns a human-readable name.
	Title() string

	// Reset starts or restarts the game.
	Reset(cfg RuntimeConfig)

	// Step advances the simulation by one tick.
	Step(in InputFrame) StepResult

	// Render draws the current state into a pre-cleared screen.
	Render(dst *Screen)

	// State returns the current game state.
	State() GameState
}
