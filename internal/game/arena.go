package game

import (
	"github.com/vovakirdan/orbfall/internal/config"
)

// panelJitter is the half-width of the uniform band applied to every
// panel endpoint coordinate at generation time.
const panelJitter = 30.0

// Arena owns the fixed obstacle set for one round. All collections
// are immutable once Generate returns.
type Arena struct {
	Width  float64
	Height float64

	Panels  []Panel
	Zones   []Zone
	Warps   []*Warp
	Gates   []Gate
	Portals []Portal

	Seed        uint32
	PresetIndex int
	PresetName  string
}

// Generate builds an arena from a 32-bit seed and the configured
// preset list. Identical (seed, presets) input produces a bit-for-bit
// identical arena.
func Generate(seed uint32, cfg *config.Config) *Arena {
	rng := NewRNG(uint64(seed))

	idx := rng.Intn(len(cfg.Presets))
	preset := cfg.Presets[idx]

	a := &Arena{
		Width:       cfg.Arena.Width,
		Height:      cfg.Arena.Height,
		Seed:        seed,
		PresetIndex: idx,
		PresetName:  preset.Name,
	}

	a.Panels = make([]Panel, 0, len(preset.Panels))
	for _, def := range preset.Panels {
		// Each of the four coordinates draws its own offset.
		a.Panels = append(a.Panels, Panel{
			A:           Vec2{X: def.X1 + rng.Range(-panelJitter, panelJitter), Y: def.Y1 + rng.Range(-panelJitter, panelJitter)},
			B:           Vec2{X: def.X2 + rng.Range(-panelJitter, panelJitter), Y: def.Y2 + rng.Range(-panelJitter, panelJitter)},
			Restitution: def.Restitution,
		})
	}

	a.Zones = make([]Zone, 0, len(preset.Zones))
	for _, def := range preset.Zones {
		kind := ZoneAccelerate
		if def.Kind == config.ZoneKindDecelerate {
			kind = ZoneDecelerate
		}
		a.Zones = append(a.Zones, Zone{
			Bounds: Rect{X: def.X, Y: def.Y, W: def.Width, H: def.Height},
			Kind:   kind,
		})
	}

	a.Warps = make([]*Warp, 0, len(preset.WarpPairs)*2)
	nextWarpID := 1
	for _, def := range preset.WarpPairs {
		wa := &Warp{ID: nextWarpID, Center: Vec2{X: def.AX, Y: def.AY}, Radius: def.ARadius}
		wb := &Warp{ID: nextWarpID + 1, Center: Vec2{X: def.BX, Y: def.BY}, Radius: def.BRadius}
		wa.Partner = wb
		wb.Partner = wa
		nextWarpID += 2
		a.Warps = append(a.Warps, wa, wb)
	}

	a.Gates = make([]Gate, 0, len(preset.Gates))
	for i, def := range preset.Gates {
		a.Gates = append(a.Gates, Gate{
			ID: GateID(i + 1),
			A:  Vec2{X: def.X1, Y: def.Y1},
			B:  Vec2{X: def.X2, Y: def.Y2},
		})
	}

	a.Portals = layoutPortals(preset.PortalCount, cfg, rng)
	return a
}

// layoutPortals places portals along the bottom edge, evenly spaced
// with equal gaps including at both ends. Each portal's tier is drawn
// independently, so a round is not guaranteed to offer all three.
func layoutPortals(count int, cfg *config.Config, rng *RNG) []Portal {
	if count <= 0 {
		count = 3
	}

	w := cfg.Arena.PortalWidth
	h := cfg.Arena.PortalHeight
	gap := (cfg.Arena.Width - float64(count)*w) / float64(count+1)

	portals := make([]Portal, 0, count)
	for i := 0; i < count; i++ {
		x := gap + float64(i)*(w+gap)
		portals = append(portals, Portal{
			Bounds: Rect{X: x, Y: cfg.Arena.Height - h, W: w, H: h},
			Kind:   PortalKind(rng.Intn(NumPortalKinds)),
		})
	}
	return portals
}
