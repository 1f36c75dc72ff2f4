package engine

import (
	"log"
	"math"

	"github.com/lixenwraith/void-trader/event"
	"github.com/lixenwraith/void-trader/physics"
	"github.com/lixenwraith/void-trader/vmath"
)

// FrameStats counts work done by the last Step
type FrameStats struct {
	Frame      int64
	Bodies     int
	Candidates int // Broad phase pairs, self excluded
	Contacts   int
	// SubTicks per pair this frame; equals the tick cap when dt was coarsened
	SubTicks int
	Capped   bool
}

// Step runs one maintain -> detect -> integrate pass and returns the frame's collision events
// The returned slice is valid until the next Step
// dt is in seconds; negative or NaN is treated as 0, values above the configured max are clamped
func (w *World) Step(dt float64) []event.CollisionEvent {
	w.events.Reset()
	dt = w.clampDelta(dt)
	w.lastDelta = dt

	w.stats = FrameStats{Frame: w.frame, Bodies: w.entities.Count()}
	w.stats.SubTicks, _ = w.collision.SubTicks(dt)
	w.stats.Capped = w.collision.Capped(dt)
	if w.stats.Capped {
		log.Printf("physics: frame %d dt=%.4fs coarsened to %d sub-ticks", w.frame, dt, w.stats.SubTicks)
	}

	w.maintain()
	w.detect(dt)
	w.integrate(dt)

	w.frame++
	return w.events.Events()
}

// LastDelta returns the clamped dt of the last Step in seconds
func (w *World) LastDelta() float64 {
	return w.lastDelta
}

// Events returns the last Step's collision events
func (w *World) Events() []event.CollisionEvent {
	return w.events.Events()
}

func (w *World) clampDelta(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if w.maxFrameDelta > 0 && dt > w.maxFrameDelta {
		return w.maxFrameDelta
	}
	return dt
}

// maintain purges despawned handles then buckets new and moved entities
func (w *World) maintain() {
	w.grid.Retain(w.entities.Alive)

	for e := range w.entities.All() {
		idx := e.Index
		pos := w.positions[idx]
		if !w.inGrid[idx] {
			w.grid.Insert(e, pos)
			w.inGrid[idx] = true
			w.indexed[idx] = pos
			continue
		}
		if w.indexed[idx] != pos {
			w.grid.Update(e, w.indexed[idx], pos)
			w.indexed[idx] = pos
		}
	}
}

// detect is read-only on bodies, positions and grid
func (w *World) detect(dt float64) {
	for e := range w.entities.All() {
		self := w.bodies[e.Index]
		pos := w.positions[e.Index]

		for other := range w.grid.Query(pos) {
			if other == e || !w.entities.Alive(other) {
				continue
			}
			w.stats.Candidates++

			relative := vmath.V2Sub(w.positions[other.Index], pos)
			contact, ok := physics.FindCollision(self, w.bodies[other.Index], relative, dt, w.collision)
			if !ok {
				continue
			}
			w.stats.Contacts++
			w.events.Push(event.CollisionEvent{
				A:     e,
				B:     other,
				Point: vmath.V2Add(pos, contact.Offset),
				Ticks: contact.Ticks,
			})
		}
	}
}

func (w *World) integrate(dt float64) {
	if dt == 0 {
		return
	}
	for e := range w.entities.All() {
		idx := e.Index
		w.positions[idx] = physics.Integrate(w.positions[idx], w.bodies[idx], dt)
	}
}
