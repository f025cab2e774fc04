package core

// RuntimeConfig contains configuration passed to games at initialization.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 60)
	PlayerName string // Name statistics are recorded under
	HoldTicks  int    // Ticks a movement key stays held after a press
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   60,
		PlayerName: "Guest",
		HoldTicks:  30,
	}
}

// GameState is the observable state the platform reads back every tick.
type GameState struct {
	Score       int  // Current score
	Level       int  // Current level number (1-based)
	Lives       int  // Remaining lives, -1 when unlimited
	Health      int  // Player health
	ElapsedSecs int  // Unpaused play time in whole seconds
	GameOver    bool // Whether the game has ended
	Paused      bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
