package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/speaki-box/config"
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/engine"
	"github.com/lixenwraith/speaki-box/event"
	"github.com/lixenwraith/speaki-box/input"
	"github.com/lixenwraith/speaki-box/sprite"
	"github.com/lixenwraith/speaki-box/vmath"
)

func defaultGraph(t *testing.T) *sprite.Graph {
	t.Helper()
	bank, err := sprite.Default()
	if err != nil {
		t.Fatalf("sprite.Default: %v", err)
	}
	return bank.Graph
}

func drain(w *engine.World) []event.GameEvent {
	evs := w.Resource.Event.Queue.Consume()
	out := make([]event.GameEvent, len(evs))
	copy(out, evs)
	return out
}

func advance(w *engine.World, dt time.Duration) {
	w.Resource.Time.Advance(dt)
	w.Resource.Transient.Reset()
}

type fakeMonitor map[core.VoiceHandle]bool

func (m fakeMonitor) Playing(h core.VoiceHandle) bool { return m[h] }

// TestPressGrabsTopmost verifies the later-spawned speaki wins the hit test
func TestPressGrabsTopmost(t *testing.T) {
	w := engine.NewTestWorld(vmath.NewScripted(0))
	s := NewInteractionSystem(w)

	bottom := w.PlaceSpeaki(0, 0, 0, 0, 100)
	top := w.PlaceSpeaki(20, 0, 0, 0, 100)

	w.Resource.Input.Pointer = inputDown(10, 0)
	s.Update()

	if g, _ := w.Components.Grab.Get(top); !g.Held {
		t.Error("Expected topmost speaki held")
	}
	if g, _ := w.Components.Grab.Get(bottom); g.Held {
		t.Error("Expected bottom speaki not held")
	}
	if d := w.Resource.Drag; !d.Active || d.Entity != top {
		t.Errorf("Expected drag on %d, got %+v", top, d)
	}

	evs := drain(w)
	if len(evs) != 1 || evs[0].Type != event.EventVoiceRequest {
		t.Fatalf("Expected one voice request, got %v", evs)
	}
	p := evs[0].Payload.(*event.VoiceRequestPayload)
	if p.Entity != top || p.Voice != 0 || p.Category != event.VoiceGrab || p.Volume != 1.0 {
		t.Errorf("Unexpected drag voice %+v", p)
	}
}

// TestPressEmptySpawns verifies click-to-add emits spawn and create voice with no target
func TestPressEmptySpawns(t *testing.T) {
	w := engine.NewTestWorld(nil)
	s := NewInteractionSystem(w)

	w.Resource.Input.Pointer = inputDown(100, 50)
	s.Update()

	if d := w.Resource.Drag; !d.Active || d.Entity != core.None {
		t.Errorf("Expected pending drag, got %+v", d)
	}
	evs := drain(w)
	if len(evs) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(evs))
	}
	sp, ok := evs[0].Payload.(*event.SpawnRequestPayload)
	if !ok || sp.X != 100 || sp.Y != 50 || sp.VX != 0 || sp.VY != 0 {
		t.Errorf("Unexpected spawn request %+v", evs[0].Payload)
	}
	vp, ok := evs[1].Payload.(*event.VoiceRequestPayload)
	if !ok || vp.Entity != core.None || vp.Voice != 4 || vp.Category != event.VoiceCreate {
		t.Errorf("Unexpected create voice %+v", evs[1].Payload)
	}

	// Disabled click-to-add does nothing
	w.Resource.Drag.Reset()
	w.Resource.Config.Game.ClickToAdd = false
	s.Update()
	if n := len(drain(w)); n != 0 {
		t.Errorf("Expected no events, got %d", n)
	}
}

func TestModifiedPressIgnored(t *testing.T) {
	w := engine.NewTestWorld(nil)
	s := NewInteractionSystem(w)
	p := inputDown(0, 0)
	p.Modified = true
	w.Resource.Input.Pointer = p
	s.Update()
	if w.Resource.Drag.Active || w.Resource.Event.Queue.Len() != 0 {
		t.Error("Expected modified click ignored")
	}
}

// TestDragThrow verifies the held body follows the pointer and is thrown on release
func TestDragThrow(t *testing.T) {
	w := engine.NewTestWorld(vmath.NewScripted(0))
	s := NewInteractionSystem(w)
	e := w.PlaceSpeaki(0, 0, 3, 3, 100)

	w.Resource.Input.Pointer = inputDown(0, 0)
	s.Update()
	drain(w)

	// Move 30 units over 50ms, below the refresh interval
	advance(w, 50*time.Millisecond)
	w.Resource.Input.Pointer = inputAt(30, 0)
	s.Update()
	k, _ := w.Components.Kinetic.Get(e)
	if k.X != 30 || k.VX != 0 || k.VY != 0 {
		t.Errorf("Expected pinned to pointer at rest, got %+v", k)
	}

	up := inputAt(30, 0)
	up.PrimaryUp = true
	w.Resource.Input.Pointer = up
	s.Update()

	k, _ = w.Components.Kinetic.Get(e)
	// 30 / (0.05/0.05) * throw power 1
	if k.VX < 29.999 || k.VX > 30.001 || k.VY != 0 {
		t.Errorf("Expected throw velocity (30, 0), got (%f, %f)", k.VX, k.VY)
	}
	if w.Resource.Drag.Active {
		t.Error("Expected drag cleared")
	}
	if g, _ := w.Components.Grab.Get(e); g.Held {
		t.Error("Expected held flag cleared")
	}
	if idle, _ := w.Components.Idle.Get(e); idle.LastIdle != w.Resource.Time.Now {
		t.Errorf("Expected idle timer reset to %v, got %v", w.Resource.Time.Now, idle.LastIdle)
	}
}

func TestDragRefreshesReference(t *testing.T) {
	w := engine.NewTestWorld(vmath.NewScripted(0))
	s := NewInteractionSystem(w)
	w.PlaceSpeaki(0, 0, 0, 0, 100)

	w.Resource.Input.Pointer = inputDown(0, 0)
	s.Update()

	advance(w, 100*time.Millisecond)
	w.Resource.Input.Pointer = inputAt(5, 5)
	s.Update()
	if w.Resource.Drag.RefX != 0 {
		t.Error("Refresh must wait for strictly more than the interval")
	}

	advance(w, time.Millisecond)
	w.Resource.Input.Pointer = inputAt(7, 7)
	s.Update()
	if d := w.Resource.Drag; d.RefX != 7 || d.RefY != 7 || d.RefTime != w.Resource.Time.Now {
		t.Errorf("Expected reference refreshed, got %+v", d)
	}
}

func TestSecondaryClickDespawnRequest(t *testing.T) {
	w := engine.NewTestWorld(vmath.NewScripted(0.99))
	s := NewInteractionSystem(w)
	e := w.PlaceSpeaki(0, 0, 0, 0, 100)

	w.Resource.Input.Pointer = inputAt(10, 10)
	w.Resource.Input.Pointer.SecondaryDown = true
	s.Update()

	evs := drain(w)
	if len(evs) != 2 {
		t.Fatalf("Expected despawn + voice, got %d", len(evs))
	}
	if dp := evs[0].Payload.(*event.DespawnRequestPayload); dp.Entity != e {
		t.Errorf("Expected despawn of %d, got %d", e, dp.Entity)
	}
	if vp := evs[1].Payload.(*event.VoiceRequestPayload); vp.Voice != 16 || vp.Entity != e {
		t.Errorf("Expected remove voice 16 targeted at %d, got %+v", e, vp)
	}

	// Miss produces nothing
	w.Resource.Input.Pointer.X = 400
	s.Update()
	if n := len(drain(w)); n != 0 {
		t.Errorf("Expected no events on miss, got %d", n)
	}
}

// TestEmptyGroupSkipsEmission verifies no voice request when the group is empty
func TestEmptyGroupSkipsEmission(t *testing.T) {
	w := engine.NewTestWorld(nil)
	w.Resource.Config.Groups.DragVoice = nil
	s := NewInteractionSystem(w)
	w.PlaceSpeaki(0, 0, 0, 0, 100)
	w.Resource.Input.Pointer = inputDown(0, 0)
	s.Update()
	if n := len(drain(w)); n != 0 {
		t.Errorf("Expected no events, got %d", n)
	}
}

func inputAt(x, y float64) (p input.Pointer) {
	p.X, p.Y, p.Present = x, y, true
	return p
}

func inputDown(x, y float64) input.Pointer {
	p := inputAt(x, y)
	p.PrimaryDown = true
	return p
}

func TestCategoryVolume(t *testing.T) {
	a := config.AudioConfig{Master: 0.5, Grab: 1, Bounce: 0.4, Create: 1.5, Remove: -0.2, Idle: 0.6}
	tests := []struct {
		cat  event.VoiceCategory
		want float64
	}{
		{event.VoiceGrab, 1},
		{event.VoiceBounce, 0.4},
		{event.VoiceCreate, 1},
		{event.VoiceRemove, 0},
		{event.VoiceIdle, 0.6},
		{event.VoiceCategory(99), 0},
	}
	for _, tt := range tests {
		if got := CategoryVolume(a, tt.cat); got != tt.want {
			t.Errorf("%v: expected %f, got %f", tt.cat, tt.want, got)
		}
	}
}
