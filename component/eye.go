package component

import "time"

// BlinkComponent drives the open/closed eye cycle
// LastBlink is game time of the last transition
type BlinkComponent struct {
	LastBlink    time.Duration
	Cooldown     time.Duration // Wait while open
	OpenDuration time.Duration // Wait while closed
	Blinking     bool
	DoubleBlink  bool
}
