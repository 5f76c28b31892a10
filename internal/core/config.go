package core

// RuntimeConfig contains configuration passed to the game at
// initialization. The platform fills it from terminal size and CLI
// flags; the game uses it for layout and deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic rounds (0 = time-based in platform layer)
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// BonusResult is the transient outcome of an energy-meter draw,
// surfaced for one tick so the presentation layer can flash it.
type BonusResult int

const (
	BonusNone BonusResult = iota
	BonusWon              // Flow mode entered
	BonusLost             // Draw failed, meter still resets
)

// GameState is the observable state of one round, read by the
// platform each tick. The platform never mutates it.
type GameState struct {
	Score          int
	HighScore      int
	ShotsRemaining int
	Energy         float64 // Meter level in [0, 100]
	Combo          int
	FlowActive     bool
	FlowRemaining  float64 // Seconds of flow left; meaningless when inactive
	OrbInFlight    bool
	GameOver       bool // Round ended: no shots left and no orb in flight
	Paused         bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
	Bonus BonusResult // Transient draw outcome, BonusNone on most ticks
}
