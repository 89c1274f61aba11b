package physics

import (
	"math"

	"github.com/lixenwraith/speaki-box/config"
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/engine"
)

// Merge records one fusion produced this tick
type Merge struct {
	Survivor core.Entity
	Consumed core.Entity
	X, Y     float64
	VX, VY   float64
	Size     float64
}

// Mergeable reports whether two sizes fuse under the tolerance and cap
func Mergeable(s1, s2 float64, m config.MergeConfig, maxSize float64) bool {
	if s1 >= maxSize || s2 >= maxSize {
		return false
	}
	larger := math.Max(s1, s2)
	if larger <= 0 {
		return false
	}
	return math.Abs(s1-s2)/larger < m.SizeTolerance
}

// ResolveMerges fuses overlapping similar-size pairs
// A pair overlaps when its circles intersect now or it was in contacts before collision separation
// Pairs are scanned in spawn order; each speaki joins at most one merge per tick and the first match wins
// The earlier-spawned speaki survives in place, the later one is destroyed before returning
func ResolveMerges(w *engine.World, m config.MergeConfig, maxSize float64, contacts Contacts, merges []Merge) []Merge {
	if !m.Enabled {
		return merges
	}

	entities := w.Entities()
	consumed := make(map[core.Entity]bool)

	for i, a := range entities {
		if consumed[a] || Held(w, a) {
			continue
		}
		for _, b := range entities[i+1:] {
			if consumed[b] || Held(w, b) {
				continue
			}
			ka := w.Components.Kinetic.Ref(a)
			kb := w.Components.Kinetic.Ref(b)
			ba := w.Components.Body.Ref(a)
			bb := w.Components.Body.Ref(b)
			if ba == nil || bb == nil {
				continue
			}
			if !Mergeable(ba.Size, bb.Size, m, maxSize) {
				continue
			}

			minDist := (ba.Size + bb.Size) * 0.5
			dx := kb.X - ka.X
			dy := kb.Y - ka.Y
			// Coincident centers count as overlapping
			if dx*dx+dy*dy >= minDist*minDist && !contacts.Has(a, b) {
				continue
			}

			ka.X = (ka.X + kb.X) * 0.5
			ka.Y = (ka.Y + kb.Y) * 0.5
			ka.VX = (ka.VX + kb.VX) * 0.5
			ka.VY = (ka.VY+kb.VY)*0.5 + m.Impulse
			ba.Size = math.Min(maxSize, minDist*m.GrowthFactor)

			merges = append(merges, Merge{
				Survivor: a,
				Consumed: b,
				X:        ka.X,
				Y:        ka.Y,
				VX:       ka.VX,
				VY:       ka.VY,
				Size:     ba.Size,
			})
			consumed[b] = true
			break
		}
	}

	for e := range consumed {
		w.DestroyEntity(e)
	}
	return merges
}
