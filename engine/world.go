package engine

import (
	"github.com/lixenwraith/speaki-box/config"
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/event"
	"github.com/lixenwraith/speaki-box/input"
	"github.com/lixenwraith/speaki-box/status"
	"github.com/lixenwraith/speaki-box/vmath"
)

// System is one stage of the tick, run in ascending Priority
type System interface {
	Update()
	Priority() int
}

// World contains all entities, their components and singleton resources
// Confined to the tick goroutine
type World struct {
	nextEntityID core.Entity

	Resource   Resource
	Components ComponentStore

	systems []System
}

// NewWorld creates a world around the owner's config, queue and randomness
func NewWorld(cfg *config.Config, queue *event.EventQueue, rng vmath.Source) *World {
	return &World{
		nextEntityID: 1,
		Resource: Resource{
			Time:   &TimeResource{},
			Bounds: &BoundsResource{},
			Drag:   &DragResource{},
			Window: &WindowResource{},
			Config: &ConfigResource{Config: cfg},
			Event:  &EventQueueResource{Queue: queue},
			Rand:   rng,
			Status: status.NewRegistry(),

			Input:     &input.Frame{},
			Transient: &TransientResource{},
		},
		Components: newComponentStore(),
	}
}

// CreateEntity reserves a new entity ID, never zero
func (w *World) CreateEntity() core.Entity {
	id := w.nextEntityID
	w.nextEntityID++
	return id
}

// DestroyEntity removes all components associated with an entity
// Clears the drag when the held entity goes away
func (w *World) DestroyEntity(e core.Entity) {
	for _, s := range w.Components.all() {
		s.Remove(e)
	}
	if d := w.Resource.Drag; d.Active && d.Entity == e {
		d.Reset()
	}
}

// Alive reports whether e is a live speaki
func (w *World) Alive(e core.Entity) bool {
	return e != core.None && w.Components.Kinetic.Has(e)
}

// Entities returns live speakis in spawn order
func (w *World) Entities() []core.Entity {
	return w.Components.Kinetic.All()
}

// Count returns the number of live speakis
func (w *World) Count() int {
	return w.Components.Kinetic.Count()
}

// Clear removes all entities and components
func (w *World) Clear() {
	for _, s := range w.Components.all() {
		s.Clear()
	}
	w.Resource.Drag.Reset()
}

// AddSystem adds a system and keeps the list sorted by priority
func (w *World) AddSystem(system System) {
	w.systems = append(w.systems, system)

	// Insertion sort, stable for equal priorities
	for i := len(w.systems) - 1; i > 0 && w.systems[i-1].Priority() > w.systems[i].Priority(); i-- {
		w.systems[i-1], w.systems[i] = w.systems[i], w.systems[i-1]
	}
}

// Systems returns a copy of all registered systems
func (w *World) Systems() []System {
	result := make([]System, len(w.systems))
	copy(result, w.systems)
	return result
}

// Update runs all systems sequentially
func (w *World) Update() {
	for _, system := range w.systems {
		system.Update()
	}
}
