package gameplay

import (
	"cmp"
	"log"
	"slices"

	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/engine"
	"github.com/lixenwraith/void-trader/event"
	"github.com/lixenwraith/void-trader/parameter"
	"github.com/lixenwraith/void-trader/vmath"
)

// TurretSystem fires enemy bullets from turrets at the nearest player ship in range
type TurretSystem struct {
	spawner *Spawner
}

func NewTurretSystem(spawner *Spawner) *TurretSystem {
	return &TurretSystem{spawner: spawner}
}

func (s *TurretSystem) Name() string  { return "turret" }
func (s *TurretSystem) Priority() int { return parameter.PriorityTurret }

func (s *TurretSystem) Update(w *engine.World, events []event.CollisionEvent, dt float64) {
	c := s.spawner.Components
	step := seconds(dt)

	for e, turret := range c.Turret.All() {
		if turret.Ready > 0 {
			turret.Ready -= step
			continue
		}
		pos, ok := w.Position(e)
		if !ok {
			continue
		}
		target, ok := s.nearestTarget(w, pos, turret.Range)
		if !ok {
			continue
		}
		if _, err := s.spawner.FireBulletAt(e, vmath.V2Sub(target, pos), parameter.TurretBulletSpeed, SideEnemy); err != nil {
			log.Printf("turret: fire from %v failed: %v", e, err)
		}
		turret.Ready = turret.Cooldown
	}
}

func (s *TurretSystem) nearestTarget(w *engine.World, from vmath.Vec2, rangeLimit float64) (vmath.Vec2, bool) {
	var (
		best   vmath.Vec2
		bestSq = rangeLimit * rangeLimit
		found  bool
	)
	for e, ship := range s.spawner.Components.Ship.All() {
		if ship.Side != SidePlayer || ship.Destroyed() {
			continue
		}
		pos, ok := w.Position(e)
		if !ok {
			continue
		}
		if d := vmath.V2DistSq(pos, from); d <= bestSq {
			best, bestSq, found = pos, d, true
		}
	}
	return best, found
}

// ConvoySections returns the live sections of a convoy ordered by index
func (c *Components) ConvoySections(convoy int) []core.Entity {
	var out []core.Entity
	for e, sec := range c.Cargo.All() {
		if sec.Convoy == convoy {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b core.Entity) int {
		sa, _ := c.Cargo.GetComponent(a)
		sb, _ := c.Cargo.GetComponent(b)
		return cmp.Compare(sa.Index, sb.Index)
	})
	return out
}
