package engine

import (
	"iter"

	"github.com/lixenwraith/void-trader/core"
)

// EntityTable allocates generational entity handles
// Generations start at 1 so the zero handle is never issued
type EntityTable struct {
	generations []uint32 // Current generation per slot
	alive       []bool
	free        []uint32 // Freed slot indices, reused LIFO
	count       int
}

// NewEntityTable creates a table with capacity preallocated
func NewEntityTable(capacity int) *EntityTable {
	return &EntityTable{
		generations: make([]uint32, 0, capacity),
		alive:       make([]bool, 0, capacity),
		free:        make([]uint32, 0, capacity/4),
	}
}

// Create returns a fresh handle, reusing a freed slot when available
func (t *EntityTable) Create() core.Entity {
	var idx uint32
	if n := len(t.free); n > 0 {
		idx = t.free[n-1]
		t.free = t.free[:n-1]
	} else {
		idx = uint32(len(t.generations))
		t.generations = append(t.generations, 1)
		t.alive = append(t.alive, false)
	}
	t.alive[idx] = true
	t.count++
	return core.Entity{Index: idx, Generation: t.generations[idx]}
}

// Destroy frees the slot of e, returns false for stale or unknown handles
func (t *EntityTable) Destroy(e core.Entity) bool {
	if !t.Alive(e) {
		return false
	}
	t.alive[e.Index] = false
	t.generations[e.Index]++
	// Skip 0 on wraparound to keep the zero handle dead
	if t.generations[e.Index] == 0 {
		t.generations[e.Index] = 1
	}
	t.free = append(t.free, e.Index)
	t.count--
	return true
}

// Alive reports whether e refers to a live slot at its current generation
func (t *EntityTable) Alive(e core.Entity) bool {
	if int(e.Index) >= len(t.generations) {
		return false
	}
	return t.alive[e.Index] && t.generations[e.Index] == e.Generation
}

// Count returns the number of live entities
func (t *EntityTable) Count() int {
	return t.count
}

// Clear drops all entities, bumping generations so outstanding handles go stale
func (t *EntityTable) Clear() {
	t.free = t.free[:0]
	for i := len(t.generations) - 1; i >= 0; i-- {
		if t.alive[i] {
			t.generations[i]++
			if t.generations[i] == 0 {
				t.generations[i] = 1
			}
		}
		t.alive[i] = false
		t.free = append(t.free, uint32(i))
	}
	t.count = 0
}

// Handle returns the live handle occupying slot idx
func (t *EntityTable) Handle(idx uint32) (core.Entity, bool) {
	if int(idx) >= len(t.generations) || !t.alive[idx] {
		return core.Entity{}, false
	}
	return core.Entity{Index: idx, Generation: t.generations[idx]}, true
}

// All yields live handles in slot order
func (t *EntityTable) All() iter.Seq[core.Entity] {
	return func(yield func(core.Entity) bool) {
		for i := range t.generations {
			if !t.alive[i] {
				continue
			}
			if !yield(core.Entity{Index: uint32(i), Generation: t.generations[i]}) {
				return
			}
		}
	}
}
