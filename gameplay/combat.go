package gameplay

import (
	"log"
	"time"

	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/engine"
	"github.com/lixenwraith/void-trader/event"
	"github.com/lixenwraith/void-trader/parameter"
	"github.com/lixenwraith/void-trader/vmath"
)

// CombatSystem resolves bullet contacts against ships and cargo sections
// A bullet is consumed by its first valid hit; destroyed sections drop salvage
type CombatSystem struct {
	spawner *Spawner
	notices *Notices
}

func NewCombatSystem(spawner *Spawner, notices *Notices) *CombatSystem {
	return &CombatSystem{spawner: spawner, notices: notices}
}

func (s *CombatSystem) Name() string  { return "combat" }
func (s *CombatSystem) Priority() int { return parameter.PriorityCombat }

func (s *CombatSystem) Update(w *engine.World, events []event.CollisionEvent, dt float64) {
	c := s.spawner.Components

	for _, ev := range events {
		// Consumed earlier this frame
		if !w.Alive(ev.A) || !w.Alive(ev.B) {
			continue
		}
		bullet, ok := c.Bullet.GetComponent(ev.A)
		if !ok || ev.B == bullet.Owner {
			continue
		}

		if ship, ok := c.Ship.GetComponent(ev.B); ok {
			if ship.Side == bullet.Side || ship.Destroyed() {
				continue
			}
			s.hitShip(ev, bullet, ship)
			continue
		}

		if section, ok := c.Cargo.GetComponent(ev.B); ok && bullet.Side == SidePlayer {
			s.hitSection(w, ev, bullet, section)
		}
	}
}

func (s *CombatSystem) hitShip(ev event.CollisionEvent, bullet *Bullet, ship *Ship) {
	kind := NoticeHullHit
	if ship.TakeDamage(bullet.Damage) {
		kind = NoticeShieldHit
	}
	s.notices.Push(kind, ev.B, ev.Point)
	s.spawner.Despawn(ev.A)

	if ship.Destroyed() {
		log.Printf("combat: %s ship %v destroyed", ship.Side, ev.B)
		s.notices.Push(NoticeShipDestroyed, ev.B, ev.Point)
	}
}

func (s *CombatSystem) hitSection(w *engine.World, ev event.CollisionEvent, bullet *Bullet, section *CargoSection) {
	section.HP -= bullet.Damage
	s.notices.Push(NoticeCargoHit, ev.B, ev.Point)
	s.spawner.Despawn(ev.A)

	if section.HP > 0 {
		return
	}
	pos, _ := w.Position(ev.B)
	var velocity vmath.Vec2
	if body := w.Body(ev.B); body != nil {
		velocity = body.Velocity
	}
	s.spawner.Despawn(ev.B)
	s.notices.Push(NoticeSectionDestroyed, ev.B, pos)

	if _, err := s.spawner.Pickup(pos, velocity, PickupSalvage, parameter.PickupSalvageAmount); err != nil {
		log.Printf("combat: salvage drop for convoy %d failed: %v", section.Convoy, err)
	}
}

// LifetimeSystem ages bullets and despawns those past their lifetime
type LifetimeSystem struct {
	spawner *Spawner
	expired []core.Entity
}

func NewLifetimeSystem(spawner *Spawner) *LifetimeSystem {
	return &LifetimeSystem{spawner: spawner}
}

func (s *LifetimeSystem) Name() string  { return "lifetime" }
func (s *LifetimeSystem) Priority() int { return parameter.PriorityLifetime }

func (s *LifetimeSystem) Update(w *engine.World, events []event.CollisionEvent, dt float64) {
	step := seconds(dt)
	s.expired = s.expired[:0]
	for e, b := range s.spawner.Components.Bullet.All() {
		b.Lifetime += step
		if b.Lifetime > b.MaxLifetime {
			s.expired = append(s.expired, e)
		}
	}
	for _, e := range s.expired {
		s.spawner.Despawn(e)
	}
}

// CleanupSystem sweeps components of entities despawned outside the spawner
type CleanupSystem struct {
	components *Components
}

func NewCleanupSystem(c *Components) *CleanupSystem {
	return &CleanupSystem{components: c}
}

func (s *CleanupSystem) Name() string  { return "cleanup" }
func (s *CleanupSystem) Priority() int { return parameter.PriorityCleanup }

func (s *CleanupSystem) Update(w *engine.World, events []event.CollisionEvent, dt float64) {
	s.components.Sweep(w.Alive)
}

func seconds(dt float64) time.Duration {
	return time.Duration(dt * float64(time.Second))
}
