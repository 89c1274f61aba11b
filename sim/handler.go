package sim

import (
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/event"
)

// Player is the audio collaborator: starts voices and reports completion
type Player interface {
	Play(voice core.VoiceID, volume float64) (core.VoiceHandle, bool)
	Playing(h core.VoiceHandle) bool
}

// LifecycleHandler realizes spawn and despawn requests against the simulation
type LifecycleHandler struct{}

func (h *LifecycleHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventSpawnRequest, event.EventDespawnRequest}
}

func (h *LifecycleHandler) HandleEvent(s *Simulation, ev event.GameEvent) {
	switch p := ev.Payload.(type) {
	case *event.SpawnRequestPayload:
		s.Spawn(p.X, p.Y, p.VX, p.VY)
	case *event.DespawnRequestPayload:
		s.Despawn(p.Entity)
	}
}

// VoiceHandler plays voice requests and feeds started handles back for mouth animation
type VoiceHandler struct {
	Player Player
}

func (h *VoiceHandler) EventTypes() []event.EventType {
	return []event.EventType{event.EventVoiceRequest}
}

func (h *VoiceHandler) HandleEvent(s *Simulation, ev event.GameEvent) {
	p, ok := ev.Payload.(*event.VoiceRequestPayload)
	if !ok {
		return
	}
	handle, started := h.Player.Play(p.Voice, p.Volume)
	if !started || p.Entity == core.None {
		return
	}
	s.VoiceStarted(p.Entity, handle)
}
