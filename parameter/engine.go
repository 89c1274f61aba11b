package parameter

import "time"

// Tick timing
const (
	// FrameInterval is the host tick period, one physics step per frame
	FrameInterval = 16 * time.Millisecond

	// MaxFrameDelta caps delta after stalls so timers do not cascade
	MaxFrameDelta = 250 * time.Millisecond
)

// Drag
const (
	// DragRefreshInterval is how often the throw reference point is refreshed while held
	DragRefreshInterval = 100 * time.Millisecond

	// ThrowWindowSeconds normalizes drag displacement into per-tick velocity
	ThrowWindowSeconds = 0.05

	// ThrowMinScale guards the throw divisor
	ThrowMinScale = 0.001
)

// Event queue
const (
	// EventQueueInitialCap is the starting capacity of the request queue
	EventQueueInitialCap = 64
)
