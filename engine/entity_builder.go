package engine

import (
	"time"

	"github.com/lixenwraith/speaki-box/component"
	"github.com/lixenwraith/speaki-box/core"
)

// SpeakiSpec carries every value needed to materialize a speaki
// Random draws happen in the caller so spawning stays deterministic under a scripted source
type SpeakiSpec struct {
	X, Y, VX, VY  float64
	Size          float64
	RotationSpeed float64
	BlinkCooldown time.Duration
	IdleFactor    float64

	Shiny          bool
	Glow           [3]float64
	ShinyCountdown time.Duration
}

// SpawnSpeaki creates an entity with the full speaki component set at sprite index 0
func (w *World) SpawnSpeaki(spec SpeakiSpec) core.Entity {
	e := w.CreateEntity()
	now := w.Resource.Time.Now
	c := &w.Components

	c.Kinetic.Set(e, component.KineticComponent{X: spec.X, Y: spec.Y, VX: spec.VX, VY: spec.VY})
	c.Body.Set(e, component.BodyComponent{Size: spec.Size, RotationSpeed: spec.RotationSpeed})
	c.Sprite.Set(e, component.SpriteComponent{Index: 0})
	c.Blink.Set(e, component.BlinkComponent{LastBlink: now, Cooldown: spec.BlinkCooldown})
	c.Idle.Set(e, component.IdleComponent{LastIdle: now, Factor: spec.IdleFactor})
	c.Voice.Set(e, component.VoiceComponent{})
	c.Grab.Set(e, component.GrabComponent{})

	if spec.Shiny {
		c.Shiny.Set(e, component.ShinyComponent{Glow: spec.Glow, Countdown: spec.ShinyCountdown})
	}
	return e
}
