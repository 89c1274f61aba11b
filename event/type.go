package event

import (
	"fmt"
	"time"
)

// EventType represents the type of simulation request or notification
type EventType int

const (
	// EventSpawnRequest asks the host to create a speaki
	// Trigger: InteractionSystem (click-to-add), Simulation.Seed
	// Consumer: LifecycleHandler | Payload: *SpawnRequestPayload
	EventSpawnRequest EventType = iota

	// EventDespawnRequest asks the host to destroy a speaki
	// Trigger: InteractionSystem (secondary click)
	// Consumer: LifecycleHandler | Payload: *DespawnRequestPayload
	EventDespawnRequest

	// EventVoiceRequest asks the audio collaborator to play a voice
	// Trigger: InteractionSystem, AnimationSystem | Payload: *VoiceRequestPayload
	// Consumer: VoiceHandler, which reports started voices back through VoiceStarted
	EventVoiceRequest

	// EventWallBounce notifies a hard wall hit
	// Trigger: PhysicsSystem | Payload: *WallBouncePayload
	// Consumer: AnimationSystem reacts in the same tick; hosts may observe
	EventWallBounce

	// EventMerge notifies two speakis fused into one
	// Trigger: PhysicsSystem | Payload: *MergePayload
	// Consumer: render.Renderer via the router; counters are kept by PhysicsSystem
	EventMerge

	// EventShockwave notifies a shiny explosion for visuals
	// Trigger: PhysicsSystem | Payload: *ShockwavePayload
	// Consumer: renderers
	EventShockwave
)

var eventNames = map[EventType]string{
	EventSpawnRequest:   "SpawnRequest",
	EventDespawnRequest: "DespawnRequest",
	EventVoiceRequest:   "VoiceRequest",
	EventWallBounce:     "WallBounce",
	EventMerge:          "Merge",
	EventShockwave:      "Shockwave",
}

func (t EventType) String() string {
	if name, ok := eventNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// GameEvent is one queued request or notification
type GameEvent struct {
	Type      EventType
	Payload   any
	Frame     int64 // Tick that produced the event
	Timestamp time.Time
}
