package engine

import (
	"github.com/lixenwraith/speaki-box/config"
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/event"
	"github.com/lixenwraith/speaki-box/parameter"
	"github.com/lixenwraith/speaki-box/vmath"
)

// NewTestWorld builds a world over a 1000x800 surface with default config
func NewTestWorld(rng vmath.Source) *World {
	if rng == nil {
		rng = vmath.NewFastRand(1)
	}
	w := NewWorld(config.Default(), event.NewEventQueue(parameter.EventQueueInitialCap), rng)
	w.Resource.Bounds.Width = 1000
	w.Resource.Bounds.Height = 800
	return w
}

// PlaceSpeaki spawns a non-shiny speaki with fixed timers
func (w *World) PlaceSpeaki(x, y, vx, vy, size float64) core.Entity {
	return w.SpawnSpeaki(SpeakiSpec{
		X: x, Y: y, VX: vx, VY: vy,
		Size:          size,
		BlinkCooldown: parameter.BlinkCooldownMin,
		IdleFactor:    0.5,
	})
}
