package game

import "math"

// Snapshot captures the round state for determinism checks. Float
// fields are quantized to fixed-point ints for stable comparison and
// hashing.
type Snapshot struct {
	Tick           uint64
	ArenaSeed      uint32
	PresetIndex    int
	Score          int
	ShotsRemaining int
	EnergyMilli    int // Energy * 1000
	Combo          int
	FlowActive     bool
	FlowMilli      int // FlowRemaining * 1000

	OrbInFlight bool
	OrbX, OrbY  int // Position * 1000
	OrbVX, OrbVY int // Velocity * 1000
	OrbGates    int

	SessionRNG uint64
}

// milli quantizes a float to thousandths.
func milli(v float64) int {
	return int(math.Round(v * 1000))
}

// Snapshot returns the current round state.
func (g *Game) Snapshot() Snapshot {
	s := g.session
	snap := Snapshot{
		Tick:           uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		ArenaSeed:      g.arena.Seed,
		PresetIndex:    g.arena.PresetIndex,
		Score:          s.Score(),
		ShotsRemaining: s.ShotsRemaining(),
		EnergyMilli:    milli(s.Energy()),
		Combo:          s.Combo(),
		FlowActive:     s.FlowActive(),
		FlowMilli:      milli(s.FlowRemaining()),
		SessionRNG:     s.rng.State(),
	}

	if orb := s.Orb(); orb != nil {
		snap.OrbInFlight = true
		snap.OrbX = milli(orb.Pos.X)
		snap.OrbY = milli(orb.Pos.Y)
		snap.OrbVX = milli(orb.Vel.X)
		snap.OrbVY = milli(orb.Vel.Y)
		snap.OrbGates = orb.GateCount()
	}

	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.ArenaSeed)
	h = h*31 + uint64(snap.PresetIndex)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.ShotsRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.EnergyMilli)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Combo)          //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FlowMilli)      //#nosec G115 -- hash computation
	if snap.FlowActive {
		h = h*31 + 1
	}
	if snap.OrbInFlight {
		h = h*31 + 1
		h = h*31 + uint64(snap.OrbX)     //#nosec G115 -- hash computation
		h = h*31 + uint64(snap.OrbY)     //#nosec G115 -- hash computation
		h = h*31 + uint64(snap.OrbVX)    //#nosec G115 -- hash computation
		h = h*31 + uint64(snap.OrbVY)    //#nosec G115 -- hash computation
		h = h*31 + uint64(snap.OrbGates) //#nosec G115 -- hash computation
	}
	h = h*31 + snap.SessionRNG
	return h
}
