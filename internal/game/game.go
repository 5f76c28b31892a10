package game

import (
	"math"

	"github.com/vovakirdan/orbfall/internal/config"
	"github.com/vovakirdan/orbfall/internal/core"
)

// Aim adjustment per key press.
const (
	aimAngleStep = 2.0  // Degrees
	aimPowerStep = 0.05 // Fraction of the power range
)

// bonusFlashTicks is how long the draw outcome stays on the HUD.
const bonusFlashTicks = 90

// Game wires the simulation core to the platform: it owns the arena,
// the session and the aim state, and adapts input actions to launches.
type Game struct {
	runtime core.RuntimeConfig
	cfg     *config.Config

	arena   *Arena
	session *Session

	aimAngle float64 // Degrees, negative is upward
	aimPower float64 // Normalized [0, 1]

	tickCount int
	paused    bool

	startingHigh int
	persist      func(score int)

	lastBonus  core.BonusResult
	bonusFlash int // Ticks the last draw outcome stays visible

	minScreenW     int
	minScreenH     int
	screenTooSmall bool
}

// New creates a game with validated tuning. highScore is the
// persisted value read once at startup; persist is invoked (best
// effort) whenever the round score surpasses it. Either may be
// zero/nil when no storage is available.
func New(cfg *config.Config, highScore int, persist func(int)) *Game {
	return &Game{
		cfg:          cfg,
		startingHigh: highScore,
		persist:      persist,
	}
}

// ID returns the identifier used for CLI commands and score storage.
func (g *Game) ID() string {
	return "orbfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Orbfall"
}

// Reset starts a fresh round using the runtime seed. Everything from
// the previous round (arena, orb, session) is discarded wholesale.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.minScreenW = 40
	g.minScreenH = 16
	g.screenTooSmall = runtime.ScreenW < g.minScreenW || runtime.ScreenH < g.minScreenH

	g.StartRound(uint32(runtime.Seed)) //#nosec G115 -- seed truncation is fine, any 32 bits do
}

// StartRound regenerates the arena from the given seed and resets all
// session state. The best high score carries across rounds.
func (g *Game) StartRound(seed uint32) {
	high := g.startingHigh
	if g.session != nil && g.session.HighScore() > high {
		high = g.session.HighScore()
	}

	g.arena = Generate(seed, g.cfg)
	g.session = NewSession(g.cfg, NewRNG(uint64(seed)^0x9E3779B97F4A7C15), high, g.persist)

	mid := (g.cfg.Launch.MinAngleDeg + g.cfg.Launch.MaxAngleDeg) / 2
	g.aimAngle = mid
	g.aimPower = 0.6
	g.tickCount = 0
	g.paused = false
	g.lastBonus = core.BonusNone
	g.bonusFlash = 0
}

// Step advances the game by one tick. The effective dt is bounded by
// the configured max step so a stalled terminal cannot destabilize
// the integration.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && g.session.RoundOver() {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.RoundOver() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.handleAim(in)

	if in.Has(core.ActionFire) {
		// Silently a no-op while an orb is in flight or the round is
		// spent; expected from normal input races.
		g.session.Fire(g.aimAngle, g.aimPower)
	}

	dt := 1.0 / float64(g.runtime.TickRate)
	if dt > g.cfg.Physics.MaxStep {
		dt = g.cfg.Physics.MaxStep
	}
	g.session.Tick(dt, g.arena)

	bonus := g.session.ConsumeBonus()
	if bonus != core.BonusNone {
		g.lastBonus = bonus
		g.bonusFlash = bonusFlashTicks
	} else if g.bonusFlash > 0 {
		g.bonusFlash--
	}

	return core.StepResult{State: g.State(), Bonus: bonus}
}

// handleAim adjusts the launch angle and power from held keys.
func (g *Game) handleAim(in core.InputFrame) {
	l := g.cfg.Launch
	if in.Has(core.ActionAimLeft) {
		g.aimAngle -= aimAngleStep
	}
	if in.Has(core.ActionAimRight) {
		g.aimAngle += aimAngleStep
	}
	g.aimAngle = math.Max(l.MinAngleDeg, math.Min(l.MaxAngleDeg, g.aimAngle))

	if in.Has(core.ActionPowerUp) {
		g.aimPower += aimPowerStep
	}
	if in.Has(core.ActionPowerDown) {
		g.aimPower -= aimPowerStep
	}
	g.aimPower = math.Max(0, math.Min(1, g.aimPower))
}

// State returns the observable round state.
func (g *Game) State() core.GameState {
	s := g.session
	if s == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:          s.Score(),
		HighScore:      s.HighScore(),
		ShotsRemaining: s.ShotsRemaining(),
		Energy:         s.Energy(),
		Combo:          s.Combo(),
		FlowActive:     s.FlowActive(),
		FlowRemaining:  s.FlowRemaining(),
		OrbInFlight:    s.Orb() != nil,
		GameOver:       s.RoundOver(),
		Paused:         g.paused,
	}
}

// Arena exposes the current round's obstacle layout for drawing.
func (g *Game) Arena() *Arena {
	return g.arena
}

// Session exposes the scoring state machine (read-only use).
func (g *Game) Session() *Session {
	return g.session
}

// Aim returns the current launch angle (degrees) and normalized power.
func (g *Game) Aim() (angleDeg, power01 float64) {
	return g.aimAngle, g.aimPower
}
