package render

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/engine"
	"github.com/lixenwraith/void-trader/gameplay"
	"github.com/lixenwraith/void-trader/parameter"
	"github.com/lixenwraith/void-trader/physics"
	"github.com/lixenwraith/void-trader/vmath"
)

// headingGlyphs are indexed by octant, counter-clockwise from +X
var headingGlyphs = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

// Renderer draws a game onto a tcell screen centered on the player
type Renderer struct {
	screen tcell.Screen
	Camera Camera
	// ShowGrid shades occupied broad phase cells
	ShowGrid bool
}

func NewRenderer(screen tcell.Screen, scale float64) *Renderer {
	return &Renderer{screen: screen, Camera: NewCamera(scale)}
}

// Draw renders one frame and shows it
func (r *Renderer) Draw(g *gameplay.Game) {
	w, h := r.screen.Size()
	r.Camera.Resize(w, h)
	if pos, ok := g.World.Position(g.Player()); ok {
		r.Camera.Center = pos
	}

	r.screen.SetStyle(fg(RgbHUD))
	r.screen.Clear()

	if r.ShowGrid {
		r.drawGrid(g.World.Grid())
	}
	r.drawJammers(g)
	r.drawBodies(g)
	r.drawIndicators(g)
	r.drawHUD(g)
	r.screen.Show()
}

func (r *Renderer) set(x, y int, ch rune, style tcell.Style) {
	r.screen.SetContent(x, y, ch, nil, style)
}

func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		r.set(x, y, ch, style)
		x++
	}
}

func (r *Renderer) drawGrid(grid *engine.SpatialGrid) {
	size := grid.CellSize()
	style := tcell.StyleDefault.Background(RgbGridCell)
	for cell := range grid.Cells() {
		lo := vmath.V2(float64(cell.X)*size, float64(cell.Y)*size)
		hi := vmath.V2Add(lo, vmath.V2(size-1e-9, size-1e-9))
		x0, y1, _ := r.Camera.Project(lo)
		x1, y0, _ := r.Camera.Project(hi)
		for y := max(y0, 0); y <= min(y1, r.Camera.Height-1); y++ {
			for x := max(x0, 0); x <= min(x1, r.Camera.Width-1); x++ {
				r.set(x, y, ' ', style)
			}
		}
	}
}

func (r *Renderer) drawJammers(g *gameplay.Game) {
	style := fg(RgbJammerField)
	for e, j := range g.Components.Jammer.All() {
		center, ok := g.World.Position(e)
		if !ok {
			continue
		}
		radius := j.EffectiveRadius()
		cols, _ := r.Camera.Radius(radius)
		// Ring sampled densely enough to close on screen
		steps := max(16, int(cols*4))
		arc := 2 * math.Pi / float64(steps)
		spoke := vmath.V2(radius, 0)
		for i := 0; i < steps; i++ {
			if x, y, ok := r.Camera.Project(vmath.V2Add(center, spoke)); ok {
				r.set(x, y, '·', style)
			}
			spoke = vmath.V2Rotate(spoke, arc)
		}
	}
}

func (r *Renderer) drawBodies(g *gameplay.Game) {
	c := g.Components
	g.World.Each(func(e core.Entity, pos vmath.Vec2, body *physics.MotionBody) bool {
		x, y, ok := r.Camera.Project(pos)
		if !ok {
			return true
		}
		if ch, style, ok := r.glyph(c, e, body); ok {
			r.set(x, y, ch, style)
		}
		return true
	})
}

// glyph picks the symbol of an entity by its components
func (r *Renderer) glyph(c *gameplay.Components, e core.Entity, body *physics.MotionBody) (rune, tcell.Style, bool) {
	if ship, ok := c.Ship.GetComponent(e); ok {
		style := fg(RgbPlayer)
		if gameplay.Jets(ship).Forward {
			style = style.Background(RgbPlayerJet)
		}
		return HeadingGlyph(body.Heading), style, true
	}
	if b, ok := c.Bullet.GetComponent(e); ok {
		if b.Side == gameplay.SidePlayer {
			return '•', fg(RgbBulletPlayer), true
		}
		return '*', fg(RgbBulletEnemy), true
	}
	if s, ok := c.Cargo.GetComponent(e); ok {
		ch := '█'
		if c.Turret.HasEntity(e) {
			ch = '▣'
		}
		return ch, fg(cargoColor(s.HP / parameter.CargoSectionHP)), true
	}
	if p, ok := c.Pickup.GetComponent(e); ok {
		if p.Kind == gameplay.PickupExotic {
			return '◆', fg(RgbExotic), true
		}
		return '▪', fg(RgbSalvage), true
	}
	if c.Jammer.HasEntity(e) {
		return '⊕', fg(RgbJammer), true
	}
	return '?', fg(RgbHUD), true
}

// HeadingGlyph returns the arrow closest to heading
func HeadingGlyph(heading float64) rune {
	octant := int(math.Round(heading/(math.Pi/4))) % 8
	if octant < 0 {
		octant += 8
	}
	return headingGlyphs[octant]
}

// drawIndicators points at off-screen convoys from the viewport border
func (r *Renderer) drawIndicators(g *gameplay.Game) {
	seen := make(map[int]bool)
	for e, s := range g.Components.Cargo.All() {
		if seen[s.Convoy] {
			continue
		}
		pos, ok := g.World.Position(e)
		if !ok {
			continue
		}
		seen[s.Convoy] = true
		if _, _, visible := r.Camera.Project(pos); visible {
			continue
		}
		x, y := r.Camera.Edge(pos, 1)
		dir := vmath.V2Sub(pos, r.Camera.Center)
		r.set(x, y, HeadingGlyph(vmath.V2Angle(dir)), fg(RgbIndicator))
	}
}

func (r *Renderer) drawHUD(g *gameplay.Game) {
	ship, ok := g.PlayerShip()
	if !ok {
		r.drawText(0, 0, "SHIP LOST", fg(RgbHUDWarn))
		return
	}

	style := fg(RgbHUD)
	hud := fmt.Sprintf("SHD %3.0f/%.0f  HULL %3.0f/%.0f  XM %.0f  SALV %.0f",
		ship.Shields, ship.MaxShields, ship.Hull, ship.MaxHull, ship.Exotic, ship.Salvage)
	r.drawText(0, 0, hud, style)
	x := len(hud) + 2
	if g.Components.Jammed(g.Player()) {
		r.drawText(x, 0, "JAMMED", fg(RgbHUDWarn))
	}
	if ship.Destroyed() {
		r.drawText(x+8, 0, "DESTROYED", fg(RgbHUDWarn))
	}

	st := g.World.Stats()
	line := fmt.Sprintf("f%d bodies %d pairs %d contacts %d ticks %d",
		st.Frame, st.Bodies, st.Candidates, st.Contacts, st.SubTicks)
	if st.Capped {
		line += " capped"
	}
	r.drawText(0, r.Camera.Height-1, line, style)
}
