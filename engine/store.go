package engine

import (
	"iter"

	"github.com/lixenwraith/void-trader/core"
)

// AnyStore provides type-erased lifecycle operations so stores can be swept uniformly
type AnyStore interface {
	RemoveEntity(e core.Entity)
	HasEntity(e core.Entity) bool
	CountEntities() int
	Retain(keep func(core.Entity) bool)
	ClearAllComponents()
}

// Store is a generic container for component type T
// Sparse set: dense slices for iteration, map from handle to dense index
// Frame-loop owned, no locking
type Store[T any] struct {
	index    map[core.Entity]int
	entities []core.Entity
	values   []T
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 64),
		values:   make([]T, 0, 64),
	}
}

// SetComponent inserts or updates the component of e
func (s *Store[T]) SetComponent(e core.Entity, val T) {
	if i, ok := s.index[e]; ok {
		s.values[i] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

// GetComponent retrieves the component of e
func (s *Store[T]) GetComponent(e core.Entity) (T, bool) {
	i, ok := s.index[e]
	if !ok {
		var zero T
		return zero, false
	}
	return s.values[i], true
}

// RemoveEntity deletes the component of e, swapping the last entry into its slot
func (s *Store[T]) RemoveEntity(e core.Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		s.entities[i] = s.entities[last]
		s.values[i] = s.values[last]
		s.index[s.entities[i]] = i
	}
	var zero T
	s.values[last] = zero
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.index, e)
}

// HasEntity checks if e has this component
func (s *Store[T]) HasEntity(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// GetAllEntities returns a copy of the entities holding this component
func (s *Store[T]) GetAllEntities() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// All yields entity and component pairs in dense order
// The store must not be modified during iteration
func (s *Store[T]) All() iter.Seq2[core.Entity, T] {
	return func(yield func(core.Entity, T) bool) {
		for i, e := range s.entities {
			if !yield(e, s.values[i]) {
				return
			}
		}
	}
}

func (s *Store[T]) CountEntities() int {
	return len(s.entities)
}

// Retain drops every entry whose entity fails keep, single pass compaction
func (s *Store[T]) Retain(keep func(core.Entity) bool) {
	w := 0
	for i, e := range s.entities {
		if !keep(e) {
			delete(s.index, e)
			continue
		}
		s.entities[w] = e
		s.values[w] = s.values[i]
		s.index[e] = w
		w++
	}
	clear(s.values[w:])
	s.entities = s.entities[:w]
	s.values = s.values[:w]
}

// ClearAllComponents removes all components from this store
func (s *Store[T]) ClearAllComponents() {
	clear(s.index)
	clear(s.values)
	s.entities = s.entities[:0]
	s.values = s.values[:0]
}
