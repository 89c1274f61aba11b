package engine

import (
	"github.com/lixenwraith/speaki-box/component"
)

// ComponentStore provides cached pointers to typed component stores
// Built once with the world; pointers remain valid for the world's lifetime
type ComponentStore struct {
	// Motion
	Kinetic *Store[component.KineticComponent]
	Body    *Store[component.BodyComponent]

	// Presentation
	Sprite *Store[component.SpriteComponent]
	Blink  *Store[component.BlinkComponent]
	Voice  *Store[component.VoiceComponent]

	// Behavior
	Idle  *Store[component.IdleComponent]
	Grab  *Store[component.GrabComponent]
	Shiny *Store[component.ShinyComponent]
}

func newComponentStore() ComponentStore {
	return ComponentStore{
		Kinetic: NewStore[component.KineticComponent](),
		Body:    NewStore[component.BodyComponent](),
		Sprite:  NewStore[component.SpriteComponent](),
		Blink:   NewStore[component.BlinkComponent](),
		Voice:   NewStore[component.VoiceComponent](),
		Idle:    NewStore[component.IdleComponent](),
		Grab:    NewStore[component.GrabComponent](),
		Shiny:   NewStore[component.ShinyComponent](),
	}
}

// all lists every store for uniform lifecycle operations
func (c *ComponentStore) all() []AnyStore {
	return []AnyStore{c.Kinetic, c.Body, c.Sprite, c.Blink, c.Voice, c.Idle, c.Grab, c.Shiny}
}
