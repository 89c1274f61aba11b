// Package input defines the per-tick input snapshot handed to the simulation
package input

// Pointer is the pointer state for one tick in simulation space
// Down/Up fields are edges, true only on the tick the transition happened
type Pointer struct {
	X, Y    float64
	Present bool

	PrimaryDown   bool
	PrimaryUp     bool
	SecondaryDown bool

	// Modified suppresses primary-click handling (window drag chord)
	Modified bool
}

// WindowMove is a window displacement in screen pixels since the previous tick
type WindowMove struct {
	DX, DY float64
	Moved  bool
}

// WindowPos is an absolute window position in screen pixels, as polled by hosts that cannot observe moves directly
type WindowPos struct {
	X, Y  int
	Valid bool
}

// Frame bundles everything the host collected for one tick
type Frame struct {
	Pointer Pointer
	Window  WindowMove
}

// Reset clears edge flags after a tick consumed them, keeping position
func (p *Pointer) Reset() {
	p.PrimaryDown = false
	p.PrimaryUp = false
	p.SecondaryDown = false
}
