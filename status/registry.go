// Package status collects simulation counters for the status bar and logs
package status

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metric keys written by the simulation
const (
	KeySpawned    = "speaki.spawned"
	KeyDespawned  = "speaki.despawned"
	KeyAlive      = "speaki.alive"
	KeyMerges     = "physics.merges"
	KeyBounces    = "physics.bounces"
	KeyExplosions = "physics.explosions"
	KeyVoices     = "audio.voices"
	KeyTickMicros = "tick.micros"
)

// Registry is the central metrics facade
// Systems cache pointers during construction; updates go straight to atomics
type Registry struct {
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// Counter returns the integer metric for key, creating it on first use
func (r *Registry) Counter(key string) *atomic.Int64 {
	return r.Ints.Get(key)
}

// Gauge returns the float metric for key, creating it on first use
func (r *Registry) Gauge(key string) *AtomicFloat {
	return r.Floats.Get(key)
}

// Snapshot copies current integer values keyed by name
func (r *Registry) Snapshot() map[string]int64 {
	out := make(map[string]int64, r.Ints.Count())
	r.Ints.Range(func(key string, v *atomic.Int64) {
		out[key] = v.Load()
	})
	return out
}

// Format renders "key=value" pairs in key order for a single status line
func (r *Registry) Format() string {
	var b strings.Builder
	r.Ints.Range(func(key string, v *atomic.Int64) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%d", key, v.Load())
	})
	r.Floats.Range(func(key string, v *AtomicFloat) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%s=%.1f", key, v.Get())
	})
	return b.String()
}
