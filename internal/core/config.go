package core

// RuntimeConfig contains settings passed to the game when it starts.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; equal seeds give equal piece and garbage sequences
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the status the game reports to the platform.
type GameState struct {
	Score    int
	Level    int
	Lines    int
	Playing  bool // Ticks and intents are applied only while true
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
