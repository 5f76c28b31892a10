package game

import (
	"testing"

	"github.com/vovakirdan/orbfall/internal/config"
	"github.com/vovakirdan/orbfall/internal/core"
)

// testSessionConfig disables the energy side channel so scoring can be
// asserted in isolation. Individual tests re-enable what they need.
func testSessionConfig() *config.Config {
	cfg := config.Default()
	cfg.Energy = config.Energy{}
	return cfg
}

func TestSessionFireRejections(t *testing.T) {
	cfg := testSessionConfig()
	s := NewSession(cfg, NewRNG(1), 0, nil)

	if s.Fire(-45, 0) {
		t.Error("Zero power should be rejected")
	}
	if s.Fire(-5, 0.5) {
		t.Error("Out-of-range angle should be rejected")
	}
	if s.Orb() != nil {
		t.Fatal("Rejected launches should not spawn an orb")
	}
	if s.ShotsRemaining() != cfg.Launch.ShotsPerRound {
		t.Error("Rejected launches should not consume a shot")
	}

	if !s.Fire(-45, 0.5) {
		t.Fatal("Valid launch should be accepted")
	}
	if s.Orb() == nil {
		t.Fatal("Accepted launch should spawn an orb")
	}

	// A second launch while the orb is in flight is a no-op.
	if s.Fire(-45, 0.5) {
		t.Error("Launch should be rejected while an orb is in flight")
	}

	// Shots decrement on settle, not on launch.
	if s.ShotsRemaining() != cfg.Launch.ShotsPerRound {
		t.Error("Launch itself should not consume a shot")
	}
	s.OrbLost()
	if s.ShotsRemaining() != cfg.Launch.ShotsPerRound-1 {
		t.Error("Settling the shot should consume it")
	}
}

func TestSessionFireNoShotsLeft(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Launch.ShotsPerRound = 1
	s := NewSession(cfg, NewRNG(1), 0, nil)

	s.Fire(-45, 0.5)
	s.OrbLost()

	if s.Fire(-45, 0.5) {
		t.Error("Launch should be rejected with no shots left")
	}
	if !s.RoundOver() {
		t.Error("Round should be over: no shots, no orb")
	}
}

func TestSessionPortalScoring(t *testing.T) {
	cfg := testSessionConfig()
	s := NewSession(cfg, NewRNG(1), 0, nil)

	s.PortalEntered(PortalTier1)
	if s.Score() != cfg.Scoring.Tier1 {
		t.Errorf("Tier 1 score: got %d, want %d", s.Score(), cfg.Scoring.Tier1)
	}
	s.PortalEntered(PortalTier3)
	if s.Score() != cfg.Scoring.Tier1+cfg.Scoring.Tier3 {
		t.Errorf("Scores should accumulate, got %d", s.Score())
	}
}

func TestSessionFlowScoreMultiplier(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Flow.ScoreMultiplier = 2
	s := NewSession(cfg, NewRNG(1), 0, nil)

	s.flowActive = true
	s.flowRemaining = 5

	s.PortalEntered(PortalTier2)
	if s.Score() != cfg.Scoring.Tier2*2 {
		t.Errorf("Flow should double the portal score, got %d", s.Score())
	}
}

func TestSessionGateScoring(t *testing.T) {
	cfg := testSessionConfig()
	s := NewSession(cfg, NewRNG(1), 0, nil)

	shots := s.ShotsRemaining()
	s.GatePassed(1)

	if s.Score() != cfg.Scoring.Gate {
		t.Errorf("Gate score: got %d, want %d", s.Score(), cfg.Scoring.Gate)
	}
	if s.ShotsRemaining() != shots {
		t.Error("A gate crossing should not end the shot")
	}
	if s.Combo() != 0 {
		t.Error("A gate crossing alone should not touch the combo")
	}
}

func TestSessionComboRequiresGate(t *testing.T) {
	cfg := testSessionConfig()
	s := NewSession(cfg, NewRNG(1), 0, nil)

	// A portal finish whose orb crossed a gate extends the combo; the
	// gate set is read before the orb is discarded.
	s.combo = 2
	s.orb = NewOrb(Vec2{X: 240, Y: 600}, Vec2{}, 8)
	s.orb.gatesTriggered[1] = struct{}{}
	s.PortalEntered(PortalTier1)
	if s.Combo() != 3 {
		t.Errorf("Gate-plus-portal shot should extend the combo, got %d", s.Combo())
	}
	if s.Orb() != nil {
		t.Error("Portal entry should clear the orb")
	}

	// A portal finish with no gates resets the chain to 1.
	s.orb = NewOrb(Vec2{X: 240, Y: 600}, Vec2{}, 8)
	s.PortalEntered(PortalTier1)
	if s.Combo() != 1 {
		t.Errorf("Gateless portal shot should restart the combo at 1, got %d", s.Combo())
	}

	// A miss breaks the chain completely.
	s.orb = NewOrb(Vec2{X: 240, Y: 600}, Vec2{}, 8)
	s.OrbLost()
	if s.Combo() != 0 {
		t.Errorf("A miss should zero the combo, got %d", s.Combo())
	}
}

func TestSessionEnergyDrawExactlyOnce(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Energy.Gate = 100
	cfg.Flow.BaseProbability = 1
	cfg.Flow.ProbabilityCap = 1
	s := NewSession(cfg, NewRNG(1), 0, nil)

	s.GatePassed(1)

	if s.Energy() != 0 {
		t.Errorf("A full meter should reset to zero, got %v", s.Energy())
	}
	if !s.FlowActive() {
		t.Error("A guaranteed draw should activate flow")
	}
	if s.FlowRemaining() != cfg.Flow.Duration {
		t.Errorf("Flow should start at the configured duration, got %v", s.FlowRemaining())
	}
	if got := s.ConsumeBonus(); got != core.BonusWon {
		t.Errorf("First consume should report the win, got %v", got)
	}
	if got := s.ConsumeBonus(); got != core.BonusNone {
		t.Errorf("Second consume should be empty, got %v", got)
	}
}

func TestSessionEnergyDrawLoss(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Energy.Gate = 100
	cfg.Flow.BaseProbability = 0
	cfg.Flow.ProbabilityCap = 0
	s := NewSession(cfg, NewRNG(1), 0, nil)

	s.GatePassed(1)

	if s.Energy() != 0 {
		t.Errorf("The meter resets even on a lost draw, got %v", s.Energy())
	}
	if s.FlowActive() {
		t.Error("A guaranteed-loss draw should not activate flow")
	}
	if got := s.ConsumeBonus(); got != core.BonusLost {
		t.Errorf("Consume should report the loss, got %v", got)
	}
}

func TestSessionEnergyOverfillClamps(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Energy.Tier3 = 250 // Overshoots the meter in one event
	cfg.Flow.BaseProbability = 1
	cfg.Flow.ProbabilityCap = 1
	s := NewSession(cfg, NewRNG(1), 0, nil)

	s.PortalEntered(PortalTier3)

	// Clamped to 100, then the threshold fires exactly once.
	if s.Energy() != 0 {
		t.Errorf("Overfill should clamp then reset, got %v", s.Energy())
	}
	if got := s.ConsumeBonus(); got != core.BonusWon {
		t.Errorf("Exactly one draw per crossing, got %v", got)
	}
}

func TestSessionDrawBoosts(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Flow.BaseProbability = 0.1
	cfg.Flow.ProbabilityCap = 1
	s := NewSession(cfg, NewRNG(1), 0, nil)

	// Recent history: a gold finish and two misses among the last 3,
	// plus an active combo. All three boosts apply.
	s.pushRecent(ShotRecord{Kind: PortalTier3})
	s.pushRecent(ShotRecord{Missed: true})
	s.pushRecent(ShotRecord{Missed: true})
	s.combo = 2

	want := 0.1 + boostTopTierRecent + boostMissStreak + boostCombo
	got := s.drawProbability()
	if !almostEqual(got, want) {
		t.Errorf("Boosted probability: got %v, want %v", got, want)
	}
}

func TestSessionDrawProbabilityCap(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Flow.BaseProbability = 0.48
	cfg.Flow.ProbabilityCap = 0.5
	s := NewSession(cfg, NewRNG(1), 0, nil)

	s.pushRecent(ShotRecord{Kind: PortalTier3})
	s.combo = 2

	if got := s.drawProbability(); got != 0.5 {
		t.Errorf("Probability should cap at %v, got %v", cfg.Flow.ProbabilityCap, got)
	}
}

func TestSessionFlowExtendChains(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Flow.ExtendProbability = 1
	cfg.Flow.ExtendSeconds = 3
	cfg.Flow.ExtendCap = 6
	s := NewSession(cfg, NewRNG(1), 0, nil)

	s.flowActive = true
	s.flowRemaining = 0.01

	s.Tick(0.02, nil)

	if !s.FlowActive() {
		t.Fatal("A guaranteed extend should keep flow active")
	}
	// The extend restores time from the moment of expiry.
	if s.FlowRemaining() <= 2.9 || s.FlowRemaining() > 3 {
		t.Errorf("Extended time should be just under the extend amount, got %v", s.FlowRemaining())
	}
}

func TestSessionFlowExtendCap(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Flow.ExtendProbability = 1
	cfg.Flow.ExtendSeconds = 10
	cfg.Flow.ExtendCap = 6
	s := NewSession(cfg, NewRNG(1), 0, nil)

	s.flowActive = true
	s.flowRemaining = 0.01
	s.Tick(0.02, nil)

	if s.FlowRemaining() > 6 {
		t.Errorf("Extend should cap the remaining time at %v, got %v", cfg.Flow.ExtendCap, s.FlowRemaining())
	}
}

func TestSessionFlowExpires(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Flow.ExtendProbability = 0
	s := NewSession(cfg, NewRNG(1), 0, nil)

	s.flowActive = true
	s.flowRemaining = 0.01
	s.Tick(0.02, nil)

	if s.FlowActive() {
		t.Error("Flow should end when the extend draw fails")
	}
	if s.FlowRemaining() != 0 {
		t.Errorf("Expired flow should report zero remaining, got %v", s.FlowRemaining())
	}
}

func TestSessionFlowEnergyMultiplier(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Energy.Tier1 = 10
	cfg.Flow.EnergyMultiplier = 1.5
	s := NewSession(cfg, NewRNG(1), 0, nil)

	s.flowActive = true
	s.flowRemaining = 5
	s.PortalEntered(PortalTier1)

	if s.Energy() != 15 {
		t.Errorf("Flow should multiply portal energy gain, got %v", s.Energy())
	}
}

func TestSessionRecentHistoryBounded(t *testing.T) {
	cfg := testSessionConfig()
	s := NewSession(cfg, NewRNG(1), 0, nil)

	for i := 0; i < recentShotsMax+5; i++ {
		kind := PortalTier1
		if i >= recentShotsMax {
			kind = PortalTier3
		}
		s.pushRecent(ShotRecord{Kind: kind})
	}

	if len(s.recent) != recentShotsMax {
		t.Fatalf("History should hold at most %d entries, got %d", recentShotsMax, len(s.recent))
	}
	// The oldest entries were evicted: the last 5 pushes are all gold
	// and sit at the tail.
	for i := recentShotsMax - 5; i < recentShotsMax; i++ {
		if s.recent[i].Kind != PortalTier3 {
			t.Errorf("Entry %d should be the newer kind, got %v", i, s.recent[i].Kind)
		}
	}
}

func TestSessionHighScorePersist(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Scoring.Gate = 25

	var persisted []int
	s := NewSession(cfg, NewRNG(1), 50, func(score int) {
		persisted = append(persisted, score)
	})

	// Below the stored high score: no persistence.
	s.GatePassed(1)
	s.GatePassed(1)
	if len(persisted) != 0 {
		t.Fatalf("Score below the high score should not persist, got %v", persisted)
	}
	if s.HighScore() != 50 {
		t.Errorf("High score should hold at 50, got %d", s.HighScore())
	}

	// Crossing it persists immediately, and again on every new high.
	s.GatePassed(1)
	if len(persisted) != 1 || persisted[0] != 75 {
		t.Fatalf("New high score should persist immediately, got %v", persisted)
	}
	s.GatePassed(1)
	if len(persisted) != 2 || persisted[1] != 100 {
		t.Errorf("Each new high score should persist, got %v", persisted)
	}
	if s.HighScore() != 100 {
		t.Errorf("High score should track the round score, got %d", s.HighScore())
	}
}

func TestSessionMissEnergy(t *testing.T) {
	cfg := testSessionConfig()
	cfg.Energy.Miss = 8
	s := NewSession(cfg, NewRNG(1), 0, nil)

	s.orb = NewOrb(Vec2{X: 240, Y: 600}, Vec2{}, 8)
	s.OrbLost()

	if s.Energy() != 8 {
		t.Errorf("A miss still charges the meter, got %v", s.Energy())
	}
	if s.Score() != 0 {
		t.Errorf("A miss should not score, got %d", s.Score())
	}
}
