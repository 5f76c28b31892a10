package game

import (
	"math"

	"github.com/vovakirdan/orbfall/internal/config"
	"github.com/vovakirdan/orbfall/internal/core"
)

// recentShotsMax bounds the shot history the bonus draw inspects.
const recentShotsMax = 10

// Bonus draw boosts, additive on top of the configured base
// probability (spec'd behavior, not tuning, so not in YAML).
const (
	boostTopTierRecent = 0.05 // A gold portal among the last 3 shots
	boostMissStreak    = 0.06 // At least 2 misses among the last 3 shots
	boostCombo         = 0.03 // Current combo of 2 or more
)

// ShotRecord is one entry of the bounded recent-shot history.
type ShotRecord struct {
	Kind   PortalKind
	Missed bool
}

// Session is the scoring state machine for one round. It is the sole
// mutator of score, energy and flow state; the platform only reads
// it. It consumes the physics events by implementing EventSink.
type Session struct {
	cfg *config.Config
	rng *RNG

	score          int
	shotsRemaining int
	energy         float64
	combo          int

	flowActive    bool
	flowRemaining float64

	recent []ShotRecord

	highScore int
	persist   func(score int) // Best-effort, may be nil

	bonus core.BonusResult // Transient, consumed once per tick

	orb *Orb
}

// NewSession starts a round with full shots and a clean meter.
// highScore is the persisted value read at startup; persist is called
// with the new high score whenever the round score surpasses it.
func NewSession(cfg *config.Config, rng *RNG, highScore int, persist func(int)) *Session {
	return &Session{
		cfg:            cfg,
		rng:            rng,
		shotsRemaining: cfg.Launch.ShotsPerRound,
		recent:         make([]ShotRecord, 0, recentShotsMax),
		highScore:      highScore,
		persist:        persist,
	}
}

// Fire attempts a launch. angleDeg is the aim angle in degrees
// (negative is upward); power01 is the normalized input magnitude in
// [0, 1]. Returns false, with no state change, when a shot is already
// in flight, shots are exhausted, or the input is rejected by the
// launch mapping. A rejected launch is expected from normal input
// races and is not an error.
func (s *Session) Fire(angleDeg, power01 float64) bool {
	if s.orb != nil || s.shotsRemaining <= 0 {
		return false
	}

	vel, ok := LaunchVelocity(s.cfg.Launch, angleDeg, power01)
	if !ok {
		return false
	}

	pos := Vec2{X: s.cfg.Arena.LaunchX, Y: s.cfg.Arena.LaunchY}
	s.orb = NewOrb(pos, vel, s.cfg.Physics.OrbRadius)
	return true
}

// Tick advances the session by dt seconds: flow countdown first, then
// one physics step for the in-flight orb, whose events feed straight
// back into this session.
func (s *Session) Tick(dt float64, arena *Arena) {
	s.tickFlow(dt)

	if s.orb != nil {
		s.orb.Step(dt, arena, s.cfg.Physics, s)
	}
}

// tickFlow counts flow down and runs the extend draw at expiry. A
// successful draw retroactively restores time and re-activates flow,
// chaining until a draw fails.
func (s *Session) tickFlow(dt float64) {
	if !s.flowActive {
		return
	}

	s.flowRemaining -= dt
	if s.flowRemaining > 0 {
		return
	}

	s.flowActive = false
	if s.rng.Float() < s.cfg.Flow.ExtendProbability {
		s.flowRemaining += s.cfg.Flow.ExtendSeconds
		if s.flowRemaining > s.cfg.Flow.ExtendCap {
			s.flowRemaining = s.cfg.Flow.ExtendCap
		}
		if s.flowRemaining > 0 {
			s.flowActive = true
		}
	}
	if !s.flowActive {
		s.flowRemaining = 0
	}
}

// GatePassed credits a gate crossing. Purely incremental: it never
// ends the shot and never touches combo or history.
func (s *Session) GatePassed(GateID) {
	s.addScore(s.cfg.Scoring.Gate)
	s.gainEnergy(s.cfg.Energy.Gate)
	s.checkEnergyThreshold()
}

// PortalEntered settles a shot that ended in a portal. The finishing
// orb's gate set is read before the orb is cleared: a shot that both
// crossed a gate and scored a portal extends the combo.
func (s *Session) PortalEntered(kind PortalKind) {
	base := s.portalScore(kind)
	mult := 1.0
	if s.flowActive {
		mult = s.cfg.Flow.ScoreMultiplier
	}
	s.addScore(int(math.Round(float64(base) * mult)))

	if s.orb != nil && s.orb.HasTriggeredGates() {
		s.combo++
	} else {
		s.combo = 1
	}

	gain := s.portalEnergy(kind)
	if s.flowActive {
		gain *= s.cfg.Flow.EnergyMultiplier
	}
	s.gainEnergy(gain)

	s.pushRecent(ShotRecord{Kind: kind})
	s.orb = nil
	s.shotsRemaining--
	s.checkEnergyThreshold()
}

// OrbLost settles a shot that left the arena without scoring.
func (s *Session) OrbLost() {
	s.gainEnergy(s.cfg.Energy.Miss)
	s.pushRecent(ShotRecord{Missed: true})
	s.combo = 0
	s.orb = nil
	s.shotsRemaining--
	s.checkEnergyThreshold()
}

func (s *Session) portalScore(kind PortalKind) int {
	switch kind {
	case PortalTier1:
		return s.cfg.Scoring.Tier1
	case PortalTier2:
		return s.cfg.Scoring.Tier2
	case PortalTier3:
		return s.cfg.Scoring.Tier3
	}
	return 0
}

func (s *Session) portalEnergy(kind PortalKind) float64 {
	switch kind {
	case PortalTier1:
		return s.cfg.Energy.Tier1
	case PortalTier2:
		return s.cfg.Energy.Tier2
	case PortalTier3:
		return s.cfg.Energy.Tier3
	}
	return 0
}

// addScore applies a score delta and persists a new high score the
// moment it is surpassed. Persistence is best-effort: the adapter
// behind persist swallows (and logs) failures, so a broken disk never
// ends a round.
func (s *Session) addScore(delta int) {
	s.score += delta
	if s.score > s.highScore {
		s.highScore = s.score
		if s.persist != nil {
			s.persist(s.highScore)
		}
	}
}

// gainEnergy raises the meter, clamped to [0, 100]. The threshold
// check runs separately so each event fires it exactly once.
func (s *Session) gainEnergy(amount float64) {
	s.energy += amount
	if s.energy > 100 {
		s.energy = 100
	}
	if s.energy < 0 {
		s.energy = 0
	}
}

// drawProbability computes the flow chance for the next bonus draw:
// the configured base plus situational boosts, capped.
func (s *Session) drawProbability() float64 {
	p := s.cfg.Flow.BaseProbability

	last := s.recent
	if len(last) > 3 {
		last = last[len(last)-3:]
	}
	misses := 0
	topTier := false
	for _, r := range last {
		if r.Missed {
			misses++
		} else if r.Kind == PortalTier3 {
			topTier = true
		}
	}
	if topTier {
		p += boostTopTierRecent
	}
	if misses >= 2 {
		p += boostMissStreak
	}
	if s.combo >= 2 {
		p += boostCombo
	}
	if p > s.cfg.Flow.ProbabilityCap {
		p = s.cfg.Flow.ProbabilityCap
	}
	return p
}

// checkEnergyThreshold resets a full meter and runs the bonus draw.
// Exactly one draw happens per crossing.
func (s *Session) checkEnergyThreshold() {
	if s.energy < 100 {
		return
	}
	s.energy = 0

	if s.rng.Float() < s.drawProbability() {
		s.flowActive = true
		s.flowRemaining = s.cfg.Flow.Duration
		s.bonus = core.BonusWon
	} else {
		s.bonus = core.BonusLost
	}
}

// pushRecent appends to the bounded history, evicting the oldest.
func (s *Session) pushRecent(r ShotRecord) {
	if len(s.recent) >= recentShotsMax {
		copy(s.recent, s.recent[1:])
		s.recent = s.recent[:len(s.recent)-1]
	}
	s.recent = append(s.recent, r)
}

// ConsumeBonus returns the pending draw outcome and clears it, so the
// presentation layer sees each result for exactly one tick.
func (s *Session) ConsumeBonus() core.BonusResult {
	b := s.bonus
	s.bonus = core.BonusNone
	return b
}

// RoundOver reports whether the round has ended: no shots left and no
// orb in flight.
func (s *Session) RoundOver() bool {
	return s.shotsRemaining == 0 && s.orb == nil
}

// Orb returns the in-flight orb, or nil between shots.
func (s *Session) Orb() *Orb {
	return s.orb
}

// Score returns the current round score.
func (s *Session) Score() int {
	return s.score
}

// HighScore returns the best score seen, including persisted history.
func (s *Session) HighScore() int {
	return s.highScore
}

// ShotsRemaining returns how many launches are left this round.
func (s *Session) ShotsRemaining() int {
	return s.shotsRemaining
}

// Energy returns the meter level in [0, 100].
func (s *Session) Energy() float64 {
	return s.energy
}

// Combo returns the current combo counter.
func (s *Session) Combo() int {
	return s.combo
}

// FlowActive reports whether flow mode is running.
func (s *Session) FlowActive() bool {
	return s.flowActive
}

// FlowRemaining returns the seconds of flow left.
func (s *Session) FlowRemaining() float64 {
	return s.flowRemaining
}
