package gameplay

import (
	"github.com/lixenwraith/void-trader/engine"
	"github.com/lixenwraith/void-trader/event"
	"github.com/lixenwraith/void-trader/parameter"
)

// PickupSystem credits player ships flying into pickups and despawns the pickup
type PickupSystem struct {
	spawner *Spawner
	notices *Notices
}

func NewPickupSystem(spawner *Spawner, notices *Notices) *PickupSystem {
	return &PickupSystem{spawner: spawner, notices: notices}
}

func (s *PickupSystem) Name() string  { return "pickup" }
func (s *PickupSystem) Priority() int { return parameter.PriorityPickup }

func (s *PickupSystem) Update(w *engine.World, events []event.CollisionEvent, dt float64) {
	c := s.spawner.Components
	for _, ev := range events {
		if !w.Alive(ev.A) || !w.Alive(ev.B) {
			continue
		}
		ship, ok := c.Ship.GetComponent(ev.A)
		if !ok || ship.Side != SidePlayer || ship.Destroyed() {
			continue
		}
		pickup, ok := c.Pickup.GetComponent(ev.B)
		if !ok {
			continue
		}

		switch pickup.Kind {
		case PickupExotic:
			ship.Exotic += pickup.Amount
		case PickupSalvage:
			ship.Salvage += pickup.Amount
		}
		s.notices.Push(NoticePickup, ev.A, ev.Point)
		s.spawner.Despawn(ev.B)
	}
}
