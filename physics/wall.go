package physics

import (
	"github.com/lixenwraith/speaki-box/config"
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/engine"
	"github.com/lixenwraith/speaki-box/parameter"
	"github.com/lixenwraith/speaki-box/vmath"
)

// Walls are the inner container edges in simulation space
type Walls struct {
	Left, Right, Top, Bottom float64
}

// ComputeWalls insets each side of a centered width x height surface by its border fraction
func ComputeWalls(width, height float64, border config.BorderConfig) Walls {
	hw, hh := width*0.5, height*0.5
	return Walls{
		Left:   -hw + hw*border.Left,
		Right:  hw - hw*border.Right,
		Top:    hh - hh*border.Up,
		Bottom: -hh + hh*border.Down,
	}
}

// ResolveWalls clamps every speaki inside walls and reflects its velocity
// Each side is checked independently, so a corner hit reflects both axes and may report twice
// Entities hitting hard enough are appended to bounced and returned
func ResolveWalls(w *engine.World, walls Walls, p config.PhysicsConfig, rng vmath.Source, bounced []core.Entity) []core.Entity {
	threshold := parameter.BounceSoundSpeedSq * p.BounceResponsiveness

	for _, e := range w.Entities() {
		k := w.Components.Kinetic.Ref(e)
		b := w.Components.Body.Ref(e)
		if b == nil {
			continue
		}
		r := b.Radius()

		// Evaluated once before any reflection
		speedSq := k.VX*k.VX + k.VY*k.VY
		reseed := abs(b.RotationSpeed) < parameter.RotationReseedThreshold && speedSq > parameter.RotationReseedSpeedSq
		loud := speedSq > threshold

		hit := func(perp, tang *float64) {
			*perp *= -p.Bounce
			*tang *= p.Friction
			b.RotationSpeed *= p.Friction
			if abs(*perp) < parameter.WallRestThreshold {
				*perp = 0
			}
			if reseed {
				b.RotationSpeed = vmath.Range(rng, -parameter.RotationJitter, parameter.RotationJitter)
			}
			if loud {
				bounced = append(bounced, e)
			}
		}

		if k.Y-r < walls.Bottom {
			k.Y = walls.Bottom + r
			hit(&k.VY, &k.VX)
		}
		if k.Y+r > walls.Top {
			k.Y = walls.Top - r
			hit(&k.VY, &k.VX)
		}
		if k.X-r < walls.Left {
			k.X = walls.Left + r
			hit(&k.VX, &k.VY)
		}
		if k.X+r > walls.Right {
			k.X = walls.Right - r
			hit(&k.VX, &k.VY)
		}
	}
	return bounced
}
