package engine

import (
	"time"

	"github.com/lixenwraith/speaki-box/config"
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/event"
	"github.com/lixenwraith/speaki-box/input"
	"github.com/lixenwraith/speaki-box/status"
	"github.com/lixenwraith/speaki-box/vmath"
)

// Resource holds singleton simulation resources, accessed via World.Resource
type Resource struct {
	Time   *TimeResource
	Bounds *BoundsResource
	Drag   *DragResource
	Window *WindowResource
	Config *ConfigResource
	Event  *EventQueueResource
	Rand   vmath.Source

	// Per-tick
	Input     *input.Frame
	Transient *TransientResource

	// Telemetry
	Status *status.Registry
}

// TimeResource is advanced once per tick before any system runs
type TimeResource struct {
	// Now is accumulated game time since the simulation started
	Now time.Duration

	// Delta is the duration of the current tick
	Delta time.Duration

	FrameNumber int64
}

// Advance moves game time forward by dt
func (tr *TimeResource) Advance(dt time.Duration) {
	tr.Delta = dt
	tr.Now += dt
	tr.FrameNumber++
}

// BoundsResource is the drawable surface size in simulation units
type BoundsResource struct {
	Width, Height float64
}

// Half returns half extents
func (b *BoundsResource) Half() (hw, hh float64) {
	return b.Width * 0.5, b.Height * 0.5
}

// DragResource is the single active drag, if any
// Active with Entity == core.None means a click-to-add spawn is pending adoption
type DragResource struct {
	Active    bool
	Entity    core.Entity
	RefX      float64
	RefY      float64
	RefTime   time.Duration
	LastClick time.Duration
}

// Begin starts a drag at the given pointer position and time
func (d *DragResource) Begin(e core.Entity, x, y float64, now time.Duration) {
	d.Active = true
	d.Entity = e
	d.RefX, d.RefY = x, y
	d.RefTime = now
	d.LastClick = now
}

// Reset clears the drag between gestures, LastClick survives
func (d *DragResource) Reset() {
	last := d.LastClick
	*d = DragResource{LastClick: last}
}

// WindowResource converts absolute window positions into move deltas
type WindowResource struct {
	known bool
	lastX int
	lastY int
}

// Observe records a window position and returns the delta from the previous one
// The first observation only primes the tracker
func (w *WindowResource) Observe(x, y int) (dx, dy int, moved bool) {
	if !w.known {
		w.known = true
		w.lastX, w.lastY = x, y
		return 0, 0, false
	}
	dx, dy = x-w.lastX, y-w.lastY
	w.lastX, w.lastY = x, y
	return dx, dy, dx != 0 || dy != 0
}

// ConfigResource points at the owner's live configuration, read every tick
type ConfigResource struct {
	*config.Config
}

// EventQueueResource wraps the request queue for system access
type EventQueueResource struct {
	Queue *event.EventQueue
}

// Emit pushes an event stamped with the current frame
func (r *Resource) Emit(t event.EventType, payload any) {
	r.Event.Queue.Push(event.GameEvent{
		Type:    t,
		Payload: payload,
		Frame:   r.Time.FrameNumber,
	})
}
