package engine

import (
	"github.com/lixenwraith/speaki-box/core"
)

// TransientResource holds per-tick hand-offs between systems
// Cleared at the start of every tick; never read across ticks
type TransientResource struct {
	// Bounced lists speakis that hit a wall hard this tick, written by physics and read by animation
	// Corner hits may list an entity twice
	Bounced []core.Entity
}

// Reset empties the buffers, keeping capacity
func (t *TransientResource) Reset() {
	t.Bounced = t.Bounced[:0]
}
