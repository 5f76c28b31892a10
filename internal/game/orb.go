package game

import (
	"math"

	"github.com/vovakirdan/orbfall/internal/config"
)

const (
	// nominalTickRate is the baseline update rate the zone rate
	// constants are expressed against. Zone scaling uses
	// pow(rate, dt*nominalTickRate) so a zone behaves identically at
	// 30, 60 or 144 ticks per second.
	nominalTickRate = 60.0

	// collisionEpsilon pads panel proximity tests and the push-out
	// distance after a reflection.
	collisionEpsilon = 0.5

	// gateBand widens the gate proximity test beyond the orb radius.
	gateBand = 2.0

	// offscreenMargin is how far past the bottom edge an orb must
	// travel before it counts as lost, so it fully exits the visible
	// arena first.
	offscreenMargin = 100.0

	// speedEpsilon protects the clamp rescale against a near-zero
	// divisor.
	speedEpsilon = 1e-6
)

// EventSink receives the simulation events produced while stepping an
// orb. The session implements it; nothing in the physics layer knows
// about scoring.
type EventSink interface {
	GatePassed(id GateID)
	PortalEntered(kind PortalKind)
	OrbLost()
}

// Orb is the single in-flight projectile of one shot. It is mutated
// once per simulation step while alive and discarded after its
// terminal event.
type Orb struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64

	// WarpCooldown counts down to zero; while positive, warp
	// re-entry is suppressed.
	WarpCooldown float64

	// Alive turns false exactly once, on portal entry or on leaving
	// the arena.
	Alive bool

	gatesTriggered map[GateID]struct{}
}

// NewOrb creates an orb at the given position with the given velocity.
func NewOrb(pos, vel Vec2, radius float64) *Orb {
	return &Orb{
		Pos:            pos,
		Vel:            vel,
		Radius:         radius,
		Alive:          true,
		gatesTriggered: make(map[GateID]struct{}),
	}
}

// HasTriggeredGates reports whether this orb crossed at least one
// gate during its flight.
func (o *Orb) HasTriggeredGates() bool {
	return len(o.gatesTriggered) > 0
}

// GateCount returns how many distinct gates this orb has crossed.
func (o *Orb) GateCount() int {
	return len(o.gatesTriggered)
}

// Step advances the orb by dt seconds against the arena's obstacle
// set. The order of the phases below is load-bearing: changing it
// changes round outcomes for the same seed.
func (o *Orb) Step(dt float64, a *Arena, phys config.Physics, sink EventSink) {
	if !o.Alive {
		return
	}

	// Gravity, then clamp speed into [min, max].
	o.Vel.Y += phys.Gravity * dt

	speed := o.Vel.Length()
	if speed > phys.MaxSpeed {
		o.Vel = o.Vel.Scale(phys.MaxSpeed / math.Max(speed, speedEpsilon))
	} else if speed < phys.MinSpeed {
		o.Vel = o.Vel.Scale(phys.MinSpeed / math.Max(speed, speedEpsilon))
	}

	// Semi-implicit Euler.
	o.Pos = o.Pos.Add(o.Vel.Scale(dt))

	// Side and top walls reflect with damping. The bottom edge never
	// reflects: it is the miss boundary, checked last.
	if o.Pos.X < o.Radius {
		o.Pos.X = o.Radius
		o.Vel.X = -o.Vel.X * phys.WallDamping
	} else if o.Pos.X > a.Width-o.Radius {
		o.Pos.X = a.Width - o.Radius
		o.Vel.X = -o.Vel.X * phys.WallDamping
	}
	if o.Pos.Y < o.Radius {
		o.Pos.Y = o.Radius
		o.Vel.Y = -o.Vel.Y * phys.WallDamping
	}

	// Zone scaling, frame-rate independent via the nominal baseline.
	// Overlapping zones apply in registration order.
	for _, z := range a.Zones {
		if !z.Bounds.Contains(o.Pos) {
			continue
		}
		rate := phys.AccelRate
		if z.Kind == ZoneDecelerate {
			rate = phys.DragRate
		}
		o.Vel = o.Vel.Scale(math.Pow(rate, dt*nominalTickRate))
	}

	// Panels resolve sequentially: each reflection sees the velocity
	// left by the previous one.
	for _, p := range a.Panels {
		if p.Degenerate() {
			continue
		}
		n, ok := SegmentNormalToward(o.Pos, p.A, p.B)
		if !ok {
			continue
		}
		dist := DistancePointToSegment(o.Pos, p.A, p.B)
		if dist > o.Radius+collisionEpsilon {
			continue
		}
		approach := o.Vel.Dot(n)
		if approach >= 0 {
			continue // Moving away; already resolved
		}
		o.Vel = o.Vel.Sub(n.Scale(2 * approach)).Scale(p.Restitution)
		push := o.Radius - dist + collisionEpsilon
		o.Pos = o.Pos.Add(n.Scale(push))
	}

	// Warps: first containing circle wins, then the cooldown blocks
	// the immediate re-trigger at the partner's center.
	o.WarpCooldown -= dt
	if o.WarpCooldown <= 0 {
		for _, w := range a.Warps {
			if w.Contains(o.Pos) {
				o.Pos = w.Partner.Center
				o.WarpCooldown = phys.WarpCooldown
				break
			}
		}
	}

	// Gates fire once per orb even though the orb may sit inside the
	// proximity band for several consecutive ticks.
	for _, g := range a.Gates {
		if g.Degenerate() {
			continue
		}
		if _, done := o.gatesTriggered[g.ID]; done {
			continue
		}
		if DistancePointToSegment(o.Pos, g.A, g.B) <= o.Radius+gateBand {
			o.gatesTriggered[g.ID] = struct{}{}
			sink.GatePassed(g.ID)
		}
	}

	// Portal entry is terminal and short-circuits the miss check.
	for _, p := range a.Portals {
		if p.Bounds.Contains(o.Pos) {
			o.Alive = false
			sink.PortalEntered(p.Kind)
			break
		}
	}

	if o.Alive && o.Pos.Y-o.Radius > a.Height+offscreenMargin {
		o.Alive = false
		sink.OrbLost()
	}
}
