package engine

import (
	"errors"
	"fmt"

	"github.com/lixenwraith/void-trader/config"
	"github.com/lixenwraith/void-trader/core"
	"github.com/lixenwraith/void-trader/event"
	"github.com/lixenwraith/void-trader/physics"
	"github.com/lixenwraith/void-trader/vmath"
)

var ErrNilBody = errors.New("engine: spawn requires a motion body")

// World owns entity handles, transforms, motion bodies and the spatial grid of one simulation
// Single-threaded: all methods must be called from the frame loop goroutine
type World struct {
	entities *EntityTable

	// Per-slot state indexed by core.Entity.Index
	positions []vmath.Vec2
	bodies    []*physics.MotionBody
	indexed   []vmath.Vec2 // Position the grid last bucketed the slot at
	inGrid    []bool

	grid      *SpatialGrid
	collision physics.CollisionConfig
	// Seconds; 0 disables clamping
	maxFrameDelta float64

	events    *event.CollisionBuffer
	frame     int64
	lastDelta float64
	stats     FrameStats
}

// NewWorld creates an empty world, rejecting malformed physics configuration
func NewWorld(cfg config.PhysicsConfig) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine: %w", err)
	}
	grid, err := NewSpatialGrid(cfg.CellSize)
	if err != nil {
		return nil, err
	}
	return &World{
		entities:      NewEntityTable(256),
		grid:          grid,
		collision:     cfg.Collision(),
		maxFrameDelta: cfg.MaxFrameDelta.Seconds(),
		events:        event.NewCollisionBuffer(64),
	}, nil
}

// Spawn creates an entity at pos driven by body
// The entity joins the grid at the next Step
func (w *World) Spawn(pos vmath.Vec2, body *physics.MotionBody) (core.Entity, error) {
	if body == nil {
		return core.Entity{}, ErrNilBody
	}
	e := w.entities.Create()
	idx := int(e.Index)
	if idx == len(w.positions) {
		w.positions = append(w.positions, pos)
		w.bodies = append(w.bodies, body)
		w.indexed = append(w.indexed, vmath.Vec2{})
		w.inGrid = append(w.inGrid, false)
	} else {
		w.positions[idx] = pos
		w.bodies[idx] = body
		w.indexed[idx] = vmath.Vec2{}
		w.inGrid[idx] = false
	}
	return e, nil
}

// Despawn frees e; its grid entry is reclaimed by the next Step's retain pass
// Returns false for stale handles
func (w *World) Despawn(e core.Entity) bool {
	if !w.entities.Destroy(e) {
		return false
	}
	w.bodies[e.Index] = nil
	return true
}

// Alive reports whether e is a live entity of this world
func (w *World) Alive(e core.Entity) bool {
	return w.entities.Alive(e)
}

// Count returns the number of live entities
func (w *World) Count() int {
	return w.entities.Count()
}

// Position returns the transform position of e
func (w *World) Position(e core.Entity) (vmath.Vec2, bool) {
	if !w.entities.Alive(e) {
		return vmath.Vec2{}, false
	}
	return w.positions[e.Index], true
}

// SetPosition teleports e; the grid re-buckets it at the next Step
func (w *World) SetPosition(e core.Entity, pos vmath.Vec2) bool {
	if !w.entities.Alive(e) {
		return false
	}
	w.positions[e.Index] = pos
	return true
}

// Body returns the motion body of e, nil for dead handles
func (w *World) Body(e core.Entity) *physics.MotionBody {
	if !w.entities.Alive(e) {
		return nil
	}
	return w.bodies[e.Index]
}

// Each calls fn for every live entity in slot order, stops when fn returns false
// fn must not spawn or despawn
func (w *World) Each(fn func(e core.Entity, pos vmath.Vec2, body *physics.MotionBody) bool) {
	for e := range w.entities.All() {
		if !fn(e, w.positions[e.Index], w.bodies[e.Index]) {
			return
		}
	}
}

// Grid exposes the spatial index for read-only neighborhood queries between frames
func (w *World) Grid() *SpatialGrid {
	return w.grid
}

// CollisionConfig returns the narrow phase tuning in use
func (w *World) CollisionConfig() physics.CollisionConfig {
	return w.collision
}

// Frame returns the number of completed Steps
func (w *World) Frame() int64 {
	return w.frame
}

// Stats returns counters of the last Step
func (w *World) Stats() FrameStats {
	return w.stats
}

// Clear despawns every entity and empties the grid
func (w *World) Clear() {
	w.entities.Clear()
	w.grid.Clear()
	clear(w.bodies)
	clear(w.inGrid)
	w.events.Reset()
}
