package component

import "time"

// ShinyComponent marks a glowing variant that periodically emits an explosion
type ShinyComponent struct {
	Glow      [3]float64 // Base RGB in [0,1]
	Phase     float64    // Pulse phase in radians, advanced each tick
	Countdown time.Duration
}
