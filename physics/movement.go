// Package physics implements the per-tick passes over speaki bodies
// All constants are per tick; none of the passes scale by dt except explosion countdowns
package physics

import (
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/engine"
	"github.com/lixenwraith/speaki-box/parameter"
)

// Held reports whether e is currently dragged
func Held(w *engine.World, e core.Entity) bool {
	g, ok := w.Components.Grab.Get(e)
	return ok && g.Held
}

// ApplyGravity pulls every non-held speaki down by gravity per tick
func ApplyGravity(w *engine.World, gravity float64) {
	for _, e := range w.Entities() {
		if Held(w, e) {
			continue
		}
		if k := w.Components.Kinetic.Ref(e); k != nil {
			k.VY -= gravity
		}
	}
}

// Integrate advances position by velocity (explicit Euler, one step per tick)
func Integrate(w *engine.World) {
	for _, e := range w.Entities() {
		k := w.Components.Kinetic.Ref(e)
		k.X += k.VX
		k.Y += k.VY
	}
}

// Rotate advances rotation by rotation speed times the global scale
func Rotate(w *engine.World, scale float64) {
	for _, e := range w.Components.Body.All() {
		b := w.Components.Body.Ref(e)
		b.Rotation += b.RotationSpeed * scale
	}
}

// ApplyWindowInertia pushes non-held speakis opposite to a window move
// Screen y grows downward so the vertical term is inverted
func ApplyWindowInertia(w *engine.World, dx, dy, strength float64) bool {
	if !(abs(dx) > parameter.WindowMoveThreshold || abs(dy) > parameter.WindowMoveThreshold) {
		return false
	}
	for _, e := range w.Entities() {
		if Held(w, e) {
			continue
		}
		k := w.Components.Kinetic.Ref(e)
		k.VX -= dx * strength
		k.VY += dy * strength
	}
	return true
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
