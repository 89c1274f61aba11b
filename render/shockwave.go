package render

import (
	"github.com/lixenwraith/speaki-box/event"
	"github.com/lixenwraith/speaki-box/parameter"
	"github.com/lixenwraith/speaki-box/sim"
)

// ring is an expanding outline left by a shockwave or a merge
type ring struct {
	x, y   float64
	radius float64
	age    int
}

// progress is the expansion fraction in (0, 1]
func (r ring) progress() float64 {
	return float64(r.age+1) / float64(parameter.ShockwaveFrames)
}

func (r *Renderer) EventTypes() []event.EventType {
	return []event.EventType{event.EventShockwave, event.EventMerge}
}

// HandleEvent starts a ring for each enabled shockwave and a ripple the size of each merged body
func (r *Renderer) HandleEvent(s *sim.Simulation, ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.ShockwavePayload:
		if s.Config().Shiny.Shockwave {
			r.rings = append(r.rings, ring{x: p.X, y: p.Y, radius: p.Radius})
		}
	case *event.MergePayload:
		r.rings = append(r.rings, ring{x: p.X, y: p.Y, radius: p.Size})
	}
}

// ageRings advances every ring one frame and drops finished ones
func (r *Renderer) ageRings() {
	live := r.rings[:0]
	for _, rg := range r.rings {
		rg.age++
		if rg.age < parameter.ShockwaveFrames {
			live = append(live, rg)
		}
	}
	r.rings = live
}
