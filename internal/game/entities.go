package game

// GateID identifies a scoring gate within one arena.
type GateID int

// ZoneKind is the closed set of velocity-modifier behaviors.
type ZoneKind int

const (
	ZoneAccelerate ZoneKind = iota
	ZoneDecelerate
)

// String returns a human-readable name for the zone kind.
func (k ZoneKind) String() string {
	switch k {
	case ZoneAccelerate:
		return "accelerate"
	case ZoneDecelerate:
		return "decelerate"
	default:
		return "unknown"
	}
}

// PortalKind is the ordered enumeration of portal reward tiers,
// tier 3 highest.
type PortalKind int

const (
	PortalTier1 PortalKind = iota
	PortalTier2
	PortalTier3
)

// NumPortalKinds is the size of the portal tier enumeration.
const NumPortalKinds = 3

// String returns a human-readable name for the portal tier.
func (k PortalKind) String() string {
	switch k {
	case PortalTier1:
		return "bronze"
	case PortalTier2:
		return "silver"
	case PortalTier3:
		return "gold"
	default:
		return "unknown"
	}
}

// Panel is a static reflecting segment. Immutable after generation.
type Panel struct {
	A, B        Vec2
	Restitution float64 // Velocity scale on reflection, in (0,1]
}

// Degenerate reports whether the panel has zero length. Degenerate
// panels cannot collide with anything and are skipped during physics.
func (p Panel) Degenerate() bool {
	return p.A == p.B
}

// Zone is a static axis-aligned velocity modifier. Immutable.
type Zone struct {
	Bounds Rect
	Kind   ZoneKind
}

// Warp is one circle of a paired teleport. The partner reference is
// non-owning and symmetric: w.Partner.Partner == w.
type Warp struct {
	ID      int
	Center  Vec2
	Radius  float64
	Partner *Warp
}

// Contains reports whether p lies inside the warp circle.
func (w *Warp) Contains(p Vec2) bool {
	return CircleContains(p, w.Center, w.Radius)
}

// Gate is a stateless scoring segment. Whether a particular orb has
// already crossed it is tracked on the orb, so the same gate can fire
// once per orb across arbitrarily many orbs.
type Gate struct {
	ID   GateID
	A, B Vec2
}

// Degenerate reports whether the gate has zero length.
func (g Gate) Degenerate() bool {
	return g.A == g.B
}

// Portal is a terminal scoring slot at the bottom of the arena.
type Portal struct {
	Bounds Rect
	Kind   PortalKind
}
