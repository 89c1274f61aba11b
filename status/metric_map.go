package status

import (
	"sort"
	"sync"
)

// MetricMap maps names to lazily allocated metrics of type T
// Registration takes the lock; callers keep the pointer for lock-free updates
type MetricMap[T any] struct {
	mu    sync.RWMutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, allocating on first call
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.RLock()
	ptr, ok := m.items[key]
	m.mu.RUnlock()
	if ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if ptr, ok := m.items[key]; ok {
		return ptr
	}
	ptr = new(T)
	m.items[key] = ptr
	return ptr
}

// Range visits metrics in sorted key order outside the lock
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	type entry struct {
		key string
		ptr *T
	}

	m.mu.RLock()
	entries := make([]entry, 0, len(m.items))
	for k, p := range m.items {
		entries = append(entries, entry{k, p})
	}
	m.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
	for _, e := range entries {
		fn(e.key, e.ptr)
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}
