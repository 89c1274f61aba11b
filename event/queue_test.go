package event

import (
	"sync"
	"testing"
)

// TestQueueFIFO verifies events come out in push order
func TestQueueFIFO(t *testing.T) {
	q := NewEventQueue(2)
	for i := 0; i < 10; i++ {
		q.Push(GameEvent{Type: EventVoiceRequest, Frame: int64(i)})
	}
	if q.Len() != 10 {
		t.Fatalf("Expected 10 pending, got %d", q.Len())
	}

	events := q.Consume()
	if len(events) != 10 {
		t.Fatalf("Expected 10 events, got %d", len(events))
	}
	for i, ev := range events {
		if ev.Frame != int64(i) {
			t.Errorf("Expected frame %d at %d, got %d", i, i, ev.Frame)
		}
		if ev.Timestamp.IsZero() {
			t.Errorf("Expected timestamp on event %d", i)
		}
	}
	if q.Len() != 0 {
		t.Errorf("Expected empty queue, got %d", q.Len())
	}
}

// TestQueueNeverDrops verifies a large burst survives intact
func TestQueueNeverDrops(t *testing.T) {
	q := NewEventQueue(4)
	const n = 5000
	for i := 0; i < n; i++ {
		q.Push(GameEvent{Type: EventSpawnRequest})
	}
	if got := len(q.Consume()); got != n {
		t.Fatalf("Expected %d events, got %d", n, got)
	}
}

// TestQueueConcurrentPush verifies concurrent producers lose nothing
func TestQueueConcurrentPush(t *testing.T) {
	q := NewEventQueue(8)
	var wg sync.WaitGroup
	for p := 0; p < 8; p++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 250; i++ {
				q.Push(GameEvent{Type: EventMerge})
			}
		}()
	}
	wg.Wait()
	if got := len(q.Consume()); got != 2000 {
		t.Fatalf("Expected 2000 events, got %d", got)
	}
}

func TestEventTypeString(t *testing.T) {
	if EventMerge.String() != "Merge" {
		t.Errorf("Expected Merge, got %s", EventMerge.String())
	}
	if EventType(999).String() != "EventType(999)" {
		t.Errorf("Unexpected unknown name %s", EventType(999).String())
	}
}
