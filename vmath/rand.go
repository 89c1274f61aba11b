package vmath

import "time"

// Source is the randomness capability consumed by the simulation
// Float64 returns [0, 1); Intn returns [0, n), 0 for n <= 0
type Source interface {
	Float64() float64
	Intn(n int) int
}

// FastRand is a xorshift64 generator, not safe for concurrent use
type FastRand struct {
	state uint64
}

// NewFastRand seeds the generator, zero seed is remapped since xorshift sticks at 0
func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

// NewTimeRand seeds from wall clock
func NewTimeRand() *FastRand {
	return NewFastRand(uint64(time.Now().UnixNano()))
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 uses the top 53 bits for a uniform mantissa
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Range returns uniform [lo, hi)
func Range(src Source, lo, hi float64) float64 {
	return lo + src.Float64()*(hi-lo)
}

// Pick returns a random element of items, ok false when empty
func Pick[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[src.Intn(len(items))], true
}

// RangeDuration returns uniform [lo, hi)
func RangeDuration(src Source, lo, hi time.Duration) time.Duration {
	if hi <= lo {
		return lo
	}
	return lo + time.Duration(src.Float64()*float64(hi-lo))
}
