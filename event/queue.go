package event

import (
	"sync"
	"time"
)

// EventQueue is an unbounded FIFO of events
// Thread-Safety:
//   - Push: any goroutine
//   - Consume: single consumer (tick goroutine)
//
// Overflow: never drops, the backing slice grows
type EventQueue struct {
	mu      sync.Mutex
	pending []GameEvent
	spare   []GameEvent
}

// NewEventQueue creates a queue with the given starting capacity
func NewEventQueue(capacity int) *EventQueue {
	return &EventQueue{
		pending: make([]GameEvent, 0, capacity),
		spare:   make([]GameEvent, 0, capacity),
	}
}

// Push appends an event, stamping Timestamp when unset
func (eq *EventQueue) Push(ev GameEvent) {
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	eq.mu.Lock()
	eq.pending = append(eq.pending, ev)
	eq.mu.Unlock()
}

// Consume returns all pending events in FIFO order and empties the queue
// The returned slice is reused on the next Consume; copy to retain
func (eq *EventQueue) Consume() []GameEvent {
	eq.mu.Lock()
	defer eq.mu.Unlock()

	out := eq.pending
	eq.pending = eq.spare[:0]
	eq.spare = out
	return out
}

// Len returns the number of pending events
func (eq *EventQueue) Len() int {
	eq.mu.Lock()
	defer eq.mu.Unlock()
	return len(eq.pending)
}
