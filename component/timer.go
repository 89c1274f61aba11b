package component

import "time"

// IdleComponent schedules the next idle voice
// Factor in [0,1) scales the frequency-derived interval
type IdleComponent struct {
	LastIdle time.Duration
	Factor   float64
}
