package system

import (
	"time"

	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/engine"
	"github.com/lixenwraith/speaki-box/event"
	"github.com/lixenwraith/speaki-box/parameter"
)

// InteractionSystem turns pointer edges into drags, throws, spawns and despawns
// Runs first in the tick so physics sees the held body pinned to the pointer
type InteractionSystem struct {
	engine.SystemBase
}

// NewInteractionSystem creates the pointer handling stage
func NewInteractionSystem(world *engine.World) engine.System {
	return &InteractionSystem{SystemBase: engine.NewSystemBase(world)}
}

func (s *InteractionSystem) Name() string {
	return "interaction"
}

func (s *InteractionSystem) Priority() int {
	return parameter.PriorityInteraction
}

// Update handles, in order: primary press, drag follow, primary release, secondary press
func (s *InteractionSystem) Update() {
	p := &s.Resource.Input.Pointer
	drag := s.Resource.Drag
	now := s.Resource.Time.Now

	if p.PrimaryDown && p.Present && !p.Modified {
		s.press(p.X, p.Y, now)
	}

	if drag.Active && p.Present {
		if now-drag.RefTime > parameter.DragRefreshInterval {
			drag.RefTime = now
			drag.RefX, drag.RefY = p.X, p.Y
		}
		if k := s.Component.Kinetic.Ref(drag.Entity); k != nil {
			k.X, k.Y = p.X, p.Y
			k.VX, k.VY = 0, 0
		}
	}

	if p.PrimaryUp && drag.Active {
		s.release(p.X, p.Y, now)
	}

	if p.SecondaryDown && p.Present {
		s.remove(p.X, p.Y)
	}
}

// HitTest returns the most recently spawned speaki whose circle contains (x, y)
func HitTest(w *engine.World, x, y float64) (core.Entity, bool) {
	entities := w.Entities()
	for i := len(entities) - 1; i >= 0; i-- {
		e := entities[i]
		k, _ := w.Components.Kinetic.Get(e)
		b, ok := w.Components.Body.Get(e)
		if !ok {
			continue
		}
		dx := x - k.X
		dy := y - k.Y
		r := b.Radius()
		if dx*dx+dy*dy < r*r {
			return e, true
		}
	}
	return core.None, false
}

func (s *InteractionSystem) press(x, y float64, now time.Duration) {
	cfg := s.Resource.Config
	drag := s.Resource.Drag

	if e, ok := HitTest(s.World, x, y); ok {
		// A second press without a release abandons the previous hold
		if drag.Active && drag.Entity != e {
			if g := s.Component.Grab.Ref(drag.Entity); g != nil {
				g.Held = false
			}
		}
		drag.Begin(e, x, y, now)
		s.Component.Grab.Ref(e).Held = true
		requestVoice(s.Resource, e, cfg.Groups.DragVoice, event.VoiceGrab)
		return
	}

	if !cfg.Game.ClickToAdd {
		return
	}
	drag.Begin(core.None, x, y, now)
	s.Resource.Emit(event.EventSpawnRequest, &event.SpawnRequestPayload{X: x, Y: y})
	if len(cfg.Groups.CreateVoice) > 0 {
		emitVoice(s.Resource, core.None, core.VoiceID(cfg.Groups.CreateVoice[0]), event.VoiceCreate)
	}
}

// release throws the held speaki with the displacement since the last reference refresh
func (s *InteractionSystem) release(x, y float64, now time.Duration) {
	drag := s.Resource.Drag
	e := drag.Entity

	if e != core.None {
		elapsed := (now - drag.RefTime).Seconds()
		scale := max(elapsed/parameter.ThrowWindowSeconds, parameter.ThrowMinScale)
		power := s.Resource.Config.Physics.ThrowPower

		if k := s.Component.Kinetic.Ref(e); k != nil {
			k.VX = (x - drag.RefX) / scale * power
			k.VY = (y - drag.RefY) / scale * power
		}
		if idle := s.Component.Idle.Ref(e); idle != nil {
			idle.LastIdle = now
		}
		if g := s.Component.Grab.Ref(e); g != nil {
			g.Held = false
		}
	}
	drag.Reset()
}

func (s *InteractionSystem) remove(x, y float64) {
	e, ok := HitTest(s.World, x, y)
	if !ok {
		return
	}
	s.Resource.Emit(event.EventDespawnRequest, &event.DespawnRequestPayload{Entity: e})
	requestVoice(s.Resource, e, s.Resource.Config.Groups.RemoveVoice, event.VoiceRemove)
}
