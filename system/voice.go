package system

import (
	"github.com/lixenwraith/speaki-box/config"
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/engine"
	"github.com/lixenwraith/speaki-box/event"
	"github.com/lixenwraith/speaki-box/status"
	"github.com/lixenwraith/speaki-box/vmath"
)

// requestVoice emits a voice request for a random member of group
// Returns false and emits nothing when the group is empty
func requestVoice(res *engine.Resource, target core.Entity, group []int, cat event.VoiceCategory) bool {
	idx, ok := vmath.Pick(res.Rand, group)
	if !ok {
		return false
	}
	emitVoice(res, target, core.VoiceID(idx), cat)
	return true
}

func emitVoice(res *engine.Resource, target core.Entity, voice core.VoiceID, cat event.VoiceCategory) {
	res.Emit(event.EventVoiceRequest, &event.VoiceRequestPayload{
		Entity:   target,
		Voice:    voice,
		Volume:   CategoryVolume(res.Config.Audio, cat),
		Category: cat,
	})
	res.Status.Counter(status.KeyVoices).Add(1)
}

// CategoryVolume returns the configured volume for cat clamped to [0, 1]
func CategoryVolume(a config.AudioConfig, cat event.VoiceCategory) float64 {
	var v float64
	switch cat {
	case event.VoiceGrab:
		v = a.Grab
	case event.VoiceBounce:
		v = a.Bounce
	case event.VoiceCreate:
		v = a.Create
	case event.VoiceRemove:
		v = a.Remove
	case event.VoiceIdle:
		v = a.Idle
	}
	return min(max(v, 0), 1)
}

// pickImage returns a random member of group, ok false when empty
func pickImage(res *engine.Resource, group []int) (int, bool) {
	return vmath.Pick(res.Rand, group)
}
