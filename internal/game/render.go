package game

import (
	"fmt"
	"math"

	"github.com/vovakirdan/orbfall/internal/core"
)

// Glyphs for arena elements.
const (
	OrbChar    = '●'
	PanelChar  = '▓'
	AccelChar  = '+'
	DecelChar  = '~'
	WarpChar   = '◉'
	GateChar   = '┈'
	PortalChar = '▀'
	AimChar    = '·'
	LaunchChar = '◇'
)

// hudRows is the number of screen rows reserved above the arena.
const hudRows = 2

// portalColor maps reward tiers to HUD colors.
func portalColor(k PortalKind) core.Color {
	switch k {
	case PortalTier1:
		return core.ColorOrange
	case PortalTier2:
		return core.ColorWhite
	case PortalTier3:
		return core.ColorBrightYellow
	}
	return core.ColorDefault
}

// Render draws the current round into the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minScreenW, g.minScreenH))
		return
	}

	g.renderHUD(dst)
	g.renderArena(dst)
	g.renderOverlay(dst)
}

// toCell maps an arena coordinate into the drawable screen region
// below the HUD.
func (g *Game) toCell(dst *core.Screen, p Vec2) (int, int) {
	sx := float64(dst.Width()) / g.arena.Width
	sy := float64(dst.Height()-hudRows) / g.arena.Height
	return int(p.X * sx), hudRows + int(p.Y*sy)
}

func (g *Game) renderHUD(dst *core.Screen) {
	st := g.State()

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", st.Score))
	dst.DrawTextCentered(0, fmt.Sprintf("Shots: %d", st.ShotsRemaining))
	best := fmt.Sprintf("Best: %d", st.HighScore)
	dst.DrawText(dst.Width()-len(best)-1, 0, best)

	// Energy meter, 20 cells wide.
	filled := int(st.Energy / 100 * 20)
	dst.DrawText(1, 1, "Energy [")
	dst.DrawHLine(9, 1, filled, '█', core.ColorCyan)
	dst.DrawHLine(9+filled, 1, 20-filled, '░', core.ColorGray)
	dst.DrawText(29, 1, "]")

	if st.Combo > 1 {
		dst.DrawTextColored(32, 1, fmt.Sprintf("Combo x%d", st.Combo), core.ColorBrightYellow)
	}

	if st.FlowActive {
		flow := fmt.Sprintf("FLOW %.1fs", st.FlowRemaining)
		dst.DrawTextColored(dst.Width()-len(flow)-1, 1, flow, core.ColorMagenta)
	} else if g.bonusFlash > 0 {
		msg := "FLOW!"
		c := core.ColorMagenta
		if g.lastBonus == core.BonusLost {
			msg = "no flow..."
			c = core.ColorGray
		}
		dst.DrawTextColored(dst.Width()-len(msg)-1, 1, msg, c)
	}
}

func (g *Game) renderArena(dst *core.Screen) {
	for _, z := range g.arena.Zones {
		g.renderZone(dst, z)
	}
	for _, p := range g.arena.Panels {
		g.renderSegment(dst, p.A, p.B, PanelChar, core.ColorWhite)
	}
	for _, gt := range g.arena.Gates {
		g.renderSegment(dst, gt.A, gt.B, GateChar, core.ColorCyan)
	}
	for _, w := range g.arena.Warps {
		x, y := g.toCell(dst, w.Center)
		dst.SetColored(x, y, WarpChar, core.ColorMagenta)
	}
	for _, p := range g.arena.Portals {
		g.renderPortal(dst, p)
	}

	if orb := g.session.Orb(); orb != nil {
		x, y := g.toCell(dst, orb.Pos)
		dst.SetColored(x, y, OrbChar, core.ColorBrightWhite)
	} else if !g.session.RoundOver() {
		g.renderAim(dst)
	}
}

// renderSegment rasterizes an arena segment by sampling along it.
func (g *Game) renderSegment(dst *core.Screen, a, b Vec2, r rune, c core.Color) {
	steps := int(b.Sub(a).Length()/4) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := a.Add(b.Sub(a).Scale(t))
		x, y := g.toCell(dst, p)
		dst.SetColored(x, y, r, c)
	}
}

func (g *Game) renderZone(dst *core.Screen, z Zone) {
	ch := AccelChar
	c := core.ColorGreen
	if z.Kind == ZoneDecelerate {
		ch = DecelChar
		c = core.ColorBlue
	}
	x0, y0 := g.toCell(dst, Vec2{X: z.Bounds.X, Y: z.Bounds.Y})
	x1, y1 := g.toCell(dst, Vec2{X: z.Bounds.X + z.Bounds.W, Y: z.Bounds.Y + z.Bounds.H})
	for y := y0; y <= y1; y += 2 {
		for x := x0; x <= x1; x += 3 {
			dst.SetColored(x, y, ch, c)
		}
	}
}

func (g *Game) renderPortal(dst *core.Screen, p Portal) {
	x0, y0 := g.toCell(dst, Vec2{X: p.Bounds.X, Y: p.Bounds.Y})
	x1, _ := g.toCell(dst, Vec2{X: p.Bounds.X + p.Bounds.W, Y: p.Bounds.Y})
	c := portalColor(p.Kind)
	for x := x0; x <= x1; x++ {
		dst.SetColored(x, y0, PortalChar, c)
	}
	label := p.Kind.String()
	if x1-x0 > len(label) {
		dst.DrawTextColored(x0+(x1-x0-len(label))/2, y0+1, label, c)
	}
}

// renderAim draws the launch marker and a short ray previewing the
// current angle and power.
func (g *Game) renderAim(dst *core.Screen) {
	launch := Vec2{X: g.cfg.Arena.LaunchX, Y: g.cfg.Arena.LaunchY}
	lx, ly := g.toCell(dst, launch)
	dst.SetColored(lx, ly, LaunchChar, core.ColorBrightCyan)

	rayLen := 30 + g.aimPower*60
	unit := FromAngle(g.aimAngle*math.Pi/180, 1)
	for i := 1; i <= 4; i++ {
		p := launch.Add(unit.Scale(rayLen * float64(i) / 4))
		x, y := g.toCell(dst, p)
		dst.SetColored(x, y, AimChar, core.ColorBrightCyan)
	}
}

func (g *Game) renderOverlay(dst *core.Screen) {
	switch {
	case g.paused:
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	case g.session.RoundOver():
		subtitle := fmt.Sprintf("Score: %d  |  Press R for a new round", g.session.Score())
		g.drawCenteredBox(dst, "ROUND OVER", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
