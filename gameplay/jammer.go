package gameplay

import (
	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/engine"
	"github.com/lixenwraith/void-trader/event"
	"github.com/lixenwraith/void-trader/parameter"
	"github.com/lixenwraith/void-trader/vmath"
)

// JammerSystem grows jamming fields and marks jammable entities inside any field
// Jammed is recomputed from scratch every frame
type JammerSystem struct {
	components *Components
}

func NewJammerSystem(c *Components) *JammerSystem {
	return &JammerSystem{components: c}
}

func (s *JammerSystem) Name() string  { return "jammer" }
func (s *JammerSystem) Priority() int { return parameter.PriorityJammer }

func (s *JammerSystem) Update(w *engine.World, events []event.CollisionEvent, dt float64) {
	c := s.components
	for _, j := range c.Jammable.All() {
		j.Jammed = false
	}

	grid := w.Grid()
	step := seconds(dt)
	for e, jammer := range c.Jammer.All() {
		if jammer.Progress < jammer.GrowthTime {
			jammer.Progress += step
		}
		center, ok := w.Position(e)
		if !ok {
			continue
		}
		radius := jammer.EffectiveRadius()
		if radius <= 0 {
			continue
		}
		radiusSq := radius * radius

		// Buckets lag integration by one frame, widen by a cell
		for other := range grid.QueryRadius(center, radius+grid.CellSize()) {
			target, ok := c.Jammable.GetComponent(other)
			if !ok || target.Jammed {
				continue
			}
			pos, ok := w.Position(other)
			if !ok {
				continue
			}
			if vmath.V2DistSq(pos, center) < radiusSq {
				target.Jammed = true
			}
		}
	}
}

// Jammed reports whether e is inside a jamming field as of the last frame
func (c *Components) Jammed(e core.Entity) bool {
	j, ok := c.Jammable.GetComponent(e)
	return ok && j.Jammed
}
