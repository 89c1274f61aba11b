package parameter

import "time"

// Blink timing
const (
	BlinkOpenDuration   = 100 * time.Millisecond
	BlinkDoubleCooldown = 70 * time.Millisecond
	BlinkCooldownMin    = 5 * time.Second
	BlinkCooldownMax    = 10 * time.Second

	// BlinkDoubleRoll is the roll a uniform draw must exceed for a double blink (20%)
	BlinkDoubleRoll = 0.8

	// BlinkDoubleMinCooldown gates double blinks to long cooldowns only
	BlinkDoubleMinCooldown = 100 * time.Millisecond
)

// Mouth
const (
	// MouthCloseChance is the probability the mouth closes when a voice ends
	MouthCloseChance = 0.4
)

// Idle voice
const (
	// IdleAltRoll is the roll a uniform draw must exceed to pick idle2 over idle (20%)
	IdleAltRoll = 0.8

	// Idle interval in seconds: (IdleFreqNumerator/freq - IdleFreqOffset) * factor + IdleBaseSeconds
	IdleFreqNumerator = 30.0
	IdleFreqOffset    = 29.0
	IdleBaseSeconds   = 3.0
)
