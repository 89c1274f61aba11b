package parameter

import "time"

// Audio Hardware Settings
const (
	AudioSampleRate = 44100

	// AudioBufferDuration determines speaker latency
	AudioBufferDuration = 100 * time.Millisecond
)

// Voice synthesis
const (
	// VoiceAttack and VoiceRelease shape each synthesized syllable
	VoiceAttack  = 8 * time.Millisecond
	VoiceRelease = 40 * time.Millisecond

	// VoiceVibratoDepth is the fractional pitch wobble applied over a voice
	VoiceVibratoDepth = 0.06

	// VoiceVibratoRate in Hz
	VoiceVibratoRate = 6.0

	// VoiceSyllable is the length of one pitch step inside a voice
	VoiceSyllable = 120 * time.Millisecond

	// VoiceDefaultDuration applies when a manifest voice omits duration
	VoiceDefaultDuration = 400 * time.Millisecond

	// VoiceDefaultPitch applies when a manifest voice omits pitch
	VoiceDefaultPitch = 440.0
)
