package event

import (
	"github.com/lixenwraith/speaki-box/core"
)

// VoiceCategory names why a voice was requested; its configured volume travels in the payload
type VoiceCategory int

const (
	VoiceGrab VoiceCategory = iota
	VoiceBounce
	VoiceCreate
	VoiceRemove
	VoiceIdle
)

func (c VoiceCategory) String() string {
	switch c {
	case VoiceGrab:
		return "grab"
	case VoiceBounce:
		return "bounce"
	case VoiceCreate:
		return "create"
	case VoiceRemove:
		return "remove"
	case VoiceIdle:
		return "idle"
	default:
		return "unknown"
	}
}

// SpawnRequestPayload places a new speaki; velocity in per-tick units
type SpawnRequestPayload struct {
	X, Y   float64
	VX, VY float64
}

// DespawnRequestPayload names the speaki to remove
type DespawnRequestPayload struct {
	Entity core.Entity
}

// VoiceRequestPayload targets an entity for mouth animation, core.None for untargeted
// Volume is the category volume in [0, 1]; master volume is left to the player
type VoiceRequestPayload struct {
	Entity   core.Entity
	Voice    core.VoiceID
	Volume   float64
	Category VoiceCategory
}

// WallBouncePayload names the speaki that hit a wall hard enough to react
type WallBouncePayload struct {
	Entity core.Entity
}

// MergePayload carries both identities and the fused result
type MergePayload struct {
	Survivor core.Entity
	Consumed core.Entity
	X, Y     float64
	VX, VY   float64
	Size     float64
}

// ShockwavePayload marks an explosion origin
type ShockwavePayload struct {
	Entity core.Entity
	X, Y   float64
	Radius float64
}
