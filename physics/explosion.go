package physics

import (
	"math"
	"time"

	"github.com/lixenwraith/speaki-box/config"
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/engine"
	"github.com/lixenwraith/speaki-box/vmath"
)

// Explosion records one shiny blast fired this tick
type Explosion struct {
	Source core.Entity
	X, Y   float64
	Radius float64
}

// ExplosionInterval draws the next countdown uniformly from the configured range
func ExplosionInterval(s config.ShinyConfig, rng vmath.Source) time.Duration {
	lo := secondsToDuration(s.IntervalMin)
	hi := secondsToDuration(s.IntervalMax)
	return vmath.RangeDuration(rng, lo, hi)
}

// UpdateExplosions ticks shiny countdowns and applies radial pushes when they elapse
// Pulse phase advances regardless of whether explosions are enabled
func UpdateExplosions(w *engine.World, s config.ShinyConfig, dt time.Duration, rng vmath.Source, fired []Explosion) []Explosion {
	for _, e := range w.Components.Shiny.All() {
		sh := w.Components.Shiny.Ref(e)
		sh.Phase = math.Mod(sh.Phase+s.PulseSpeed*dt.Seconds(), 2*math.Pi)

		if !s.Explosion {
			continue
		}
		sh.Countdown -= dt
		if sh.Countdown > 0 {
			continue
		}
		sh.Countdown = ExplosionInterval(s, rng)

		k, ok := w.Components.Kinetic.Get(e)
		if !ok {
			continue
		}
		pushRadial(w, e, k.X, k.Y, s.ExplosionRadius, s.ExplosionForce)
		fired = append(fired, Explosion{Source: e, X: k.X, Y: k.Y, Radius: s.ExplosionRadius})
	}
	return fired
}

// pushRadial adds force*(1-d/r) outward to every other speaki with 0 < d < r
// A held speaki takes the push too; the drag pin overrides it on the next tick
func pushRadial(w *engine.World, src core.Entity, x, y, radius, force float64) {
	if radius <= 0 {
		return
	}
	for _, e := range w.Entities() {
		if e == src {
			continue
		}
		k := w.Components.Kinetic.Ref(e)
		dx := k.X - x
		dy := k.Y - y
		d := math.Sqrt(dx*dx + dy*dy)
		if d <= 0 || d >= radius {
			continue
		}
		f := force * (1 - d/radius)
		k.VX += dx / d * f
		k.VY += dy / d * f
	}
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
