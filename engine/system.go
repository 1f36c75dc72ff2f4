package engine

import (
	"github.com/lixenwraith/void-trader/event"
)

// System consumes a frame after integration
// Collision responses (damage, despawn, impulses) belong here, never inside detection
type System interface {
	Update(w *World, events []event.CollisionEvent, dt float64)
	Priority() int // Lower values run first
}

// Simulation drives a World and its post-integration systems in fixed order
type Simulation struct {
	World   *World
	systems []System
}

func NewSimulation(w *World) *Simulation {
	return &Simulation{World: w}
}

// AddSystem adds a system and keeps systems sorted by priority
func (s *Simulation) AddSystem(system System) {
	s.systems = append(s.systems, system)

	// Sort by priority (bubble sort, small N), stable for equal priorities
	for i := 0; i < len(s.systems)-1; i++ {
		for j := 0; j < len(s.systems)-i-1; j++ {
			if s.systems[j].Priority() > s.systems[j+1].Priority() {
				s.systems[j], s.systems[j+1] = s.systems[j+1], s.systems[j]
			}
		}
	}
}

// Systems returns a copy of registered systems in run order
func (s *Simulation) Systems() []System {
	result := make([]System, len(s.systems))
	copy(result, s.systems)
	return result
}

// Tick steps the world then hands the frame's events to every system
func (s *Simulation) Tick(dt float64) []event.CollisionEvent {
	events := s.World.Step(dt)
	dt = s.World.LastDelta()
	for _, system := range s.systems {
		system.Update(s.World, events, dt)
	}
	return events
}
