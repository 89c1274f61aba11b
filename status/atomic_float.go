package status

import (
	"math"
	"sync/atomic"
)

// AtomicFloat stores a float64 as bits; zero value reads 0.0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(val float64) {
	f.bits.Store(math.Float64bits(val))
}

func (f *AtomicFloat) Get() float64 {
	return math.Float64frombits(f.bits.Load())
}

// Smooth blends val into the stored value with weight alpha, for frame timing
func (f *AtomicFloat) Smooth(val, alpha float64) {
	for {
		old := f.bits.Load()
		cur := math.Float64frombits(old)
		next := cur + (val-cur)*alpha
		if f.bits.CompareAndSwap(old, math.Float64bits(next)) {
			return
		}
	}
}
