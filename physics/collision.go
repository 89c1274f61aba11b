package physics

import (
	"math"

	"github.com/lixenwraith/speaki-box/config"
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/engine"
)

// body is the pre-pass snapshot of one speaki
type body struct {
	e      core.Entity
	x, y   float64
	vx, vy float64
	size   float64
	held   bool
}

func snapshot(w *engine.World, buf []body) []body {
	buf = buf[:0]
	for _, e := range w.Entities() {
		k, _ := w.Components.Kinetic.Get(e)
		b, ok := w.Components.Body.Get(e)
		if !ok {
			continue
		}
		buf = append(buf, body{e: e, x: k.X, y: k.Y, vx: k.VX, vy: k.VY, size: b.Size, held: Held(w, e)})
	}
	return buf
}

// Contacts is the set of pairs that overlapped before separation this tick
// Keys are ordered (earlier spawned, later spawned)
type Contacts map[[2]core.Entity]struct{}

// Has reports whether a and b were in contact, in either order
func (c Contacts) Has(a, b core.Entity) bool {
	if c == nil {
		return false
	}
	if _, ok := c[[2]core.Entity{a, b}]; ok {
		return true
	}
	_, ok := c[[2]core.Entity{b, a}]
	return ok
}

// Collider holds scratch buffers reused across ticks
type Collider struct {
	bodies   []body
	dpos     [][2]float64
	dvel     [][2]float64
	contacts Contacts
}

// Contacts returns pairs that overlapped in the last pass, valid until the next pass
func (c *Collider) Contacts() Contacts {
	return c.contacts
}

// ResolveCollisions separates overlapping pairs and exchanges approach velocity
// Every pair reads the same snapshot; corrections accumulate and apply afterwards
// A held speaki is still pushed apart but its velocity is never changed
// Rotation speed of every speaki decays by the collision damping
func (c *Collider) ResolveCollisions(w *engine.World, p config.PhysicsConfig) {
	if c.contacts == nil {
		c.contacts = make(Contacts)
	}
	clear(c.contacts)
	if !p.Collision {
		return
	}
	c.bodies = snapshot(w, c.bodies)
	n := len(c.bodies)
	c.dpos = resize(c.dpos, n)
	c.dvel = resize(c.dvel, n)

	for i := 0; i < n; i++ {
		a := &c.bodies[i]
		for j := i + 1; j < n; j++ {
			b := &c.bodies[j]

			dx := b.x - a.x
			dy := b.y - a.y
			distSq := dx*dx + dy*dy
			minDist := (a.size + b.size) * 0.5
			if distSq <= 0 || distSq >= minDist*minDist {
				continue
			}

			c.contacts[[2]core.Entity{a.e, b.e}] = struct{}{}

			dist := math.Sqrt(distSq)
			nx, ny := dx/dist, dy/dist
			sep := (minDist - dist) * 0.5

			c.dpos[i][0] -= nx * sep
			c.dpos[i][1] -= ny * sep
			c.dpos[j][0] += nx * sep
			c.dpos[j][1] += ny * sep

			var dvn float64
			if a.held || b.held {
				dvn = -p.CursorImpulse
			} else {
				dvn = (b.vx-a.vx)*nx + (b.vy-a.vy)*ny
			}
			if dvn >= 0 {
				continue
			}

			ix := dvn * nx * p.CollisionDamping
			iy := dvn * ny * p.CollisionDamping
			if !a.held {
				c.dvel[i][0] += ix
				c.dvel[i][1] += iy
			}
			if !b.held {
				c.dvel[j][0] -= ix
				c.dvel[j][1] -= iy
			}
		}
	}

	for i := range c.bodies {
		e := c.bodies[i].e
		k := w.Components.Kinetic.Ref(e)
		k.X += c.dpos[i][0]
		k.Y += c.dpos[i][1]
		k.VX += c.dvel[i][0]
		k.VY += c.dvel[i][1]
		w.Components.Body.Ref(e).RotationSpeed *= p.CollisionDamping
	}
}

// resize returns a zeroed slice of length n, reusing capacity
func resize(s [][2]float64, n int) [][2]float64 {
	if cap(s) < n {
		return make([][2]float64, n)
	}
	s = s[:n]
	clear(s)
	return s
}
