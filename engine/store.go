package engine

import (
	"github.com/lixenwraith/speaki-box/core"
)

// Store is a generic container for a specific component type T
// Dense arrays keep insertion order, so iteration follows spawn order
// Not safe for concurrent use; the world is confined to the tick goroutine
type Store[T any] struct {
	index    map[core.Entity]int
	dense    []T
	entities []core.Entity
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		dense:    make([]T, 0, 64),
		entities: make([]core.Entity, 0, 64),
	}
}

// Set inserts or updates a component for an entity
// New entities are appended, updates keep their slot
func (s *Store[T]) Set(e core.Entity, val T) {
	if i, ok := s.index[e]; ok {
		s.dense[i] = val
		return
	}
	s.index[e] = len(s.dense)
	s.dense = append(s.dense, val)
	s.entities = append(s.entities, e)
}

// Get retrieves a copy of the component for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	if i, ok := s.index[e]; ok {
		return s.dense[i], true
	}
	var zero T
	return zero, false
}

// Ref returns a pointer into dense storage, nil when absent
// Invalidated by the next Set of a new entity or any Remove
func (s *Store[T]) Ref(e core.Entity) *T {
	if i, ok := s.index[e]; ok {
		return &s.dense[i]
	}
	return nil
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Remove deletes a component, shifting later entries to preserve order
func (s *Store[T]) Remove(e core.Entity) {
	i, ok := s.index[e]
	if !ok {
		return
	}
	delete(s.index, e)

	copy(s.dense[i:], s.dense[i+1:])
	var zero T
	s.dense[len(s.dense)-1] = zero
	s.dense = s.dense[:len(s.dense)-1]

	copy(s.entities[i:], s.entities[i+1:])
	s.entities = s.entities[:len(s.entities)-1]

	for j := i; j < len(s.entities); j++ {
		s.index[s.entities[j]] = j
	}
}

// All returns a copy of entities with this component in insertion order
func (s *Store[T]) All() []core.Entity {
	result := make([]core.Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns number of entities with this component
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.index = make(map[core.Entity]int)
	s.dense = s.dense[:0]
	s.entities = s.entities[:0]
}
