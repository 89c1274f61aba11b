package system

import (
	"testing"
	"time"

	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/engine"
	"github.com/lixenwraith/speaki-box/event"
	"github.com/lixenwraith/speaki-box/vmath"
)

func newAnimationWorld(t *testing.T, rng vmath.Source, monitor AudioMonitor) (*engine.World, *AnimationSystem) {
	t.Helper()
	w := engine.NewTestWorld(rng)
	w.Resource.Config.Audio.IdleFrequency = 0
	return w, NewAnimationSystem(w, defaultGraph(t), monitor)
}

func spriteIndex(w *engine.World, e core.Entity) int {
	sp, _ := w.Components.Sprite.Get(e)
	return sp.Index
}

// TestBlinkCycle verifies close after cooldown, reopen after 100ms, new cooldown drawn
func TestBlinkCycle(t *testing.T) {
	w, s := newAnimationWorld(t, vmath.NewScripted(0.5), nil)
	e := w.PlaceSpeaki(0, 0, 0, 0, 100) // cooldown 5s

	advance(w, 5*time.Second)
	s.Update()
	if spriteIndex(w, e) != 0 {
		t.Fatal("Blink must wait for strictly more than the cooldown")
	}

	advance(w, time.Millisecond)
	s.Update()
	b, _ := w.Components.Blink.Get(e)
	if !b.Blinking || spriteIndex(w, e) != 1 {
		t.Fatalf("Expected closed eyes at index 1, got %d blinking=%v", spriteIndex(w, e), b.Blinking)
	}
	if b.DoubleBlink {
		t.Error("Roll 0.5 must not trigger a double blink")
	}

	advance(w, 101*time.Millisecond)
	s.Update()
	b, _ = w.Components.Blink.Get(e)
	if b.Blinking || spriteIndex(w, e) != 0 {
		t.Fatalf("Expected open eyes at index 0, got %d", spriteIndex(w, e))
	}
	if b.Cooldown != 7500*time.Millisecond {
		t.Errorf("Expected cooldown 7.5s, got %v", b.Cooldown)
	}
}

func TestDoubleBlink(t *testing.T) {
	w, s := newAnimationWorld(t, vmath.NewScripted(0.9), nil)
	e := w.PlaceSpeaki(0, 0, 0, 0, 100)

	advance(w, 5001*time.Millisecond)
	s.Update()
	if b, _ := w.Components.Blink.Get(e); !b.DoubleBlink {
		t.Fatal("Expected double blink flagged on roll 0.9")
	}

	advance(w, 101*time.Millisecond)
	s.Update()
	b, _ := w.Components.Blink.Get(e)
	if b.Cooldown != 70*time.Millisecond || b.DoubleBlink {
		t.Fatalf("Expected 70ms cooldown with flag cleared, got %v %v", b.Cooldown, b.DoubleBlink)
	}

	// Short cooldown never chains into another double blink
	advance(w, 71*time.Millisecond)
	s.Update()
	if b, _ := w.Components.Blink.Get(e); !b.Blinking || b.DoubleBlink {
		t.Errorf("Expected plain second blink, got %+v", b)
	}
}

func TestBlinkMissingEdgeKeepsIndex(t *testing.T) {
	w, s := newAnimationWorld(t, vmath.NewScripted(0.5), nil)
	e := w.PlaceSpeaki(0, 0, 0, 0, 100)
	w.Components.Sprite.Ref(e).Index = 2 // idle state without eye edges

	advance(w, 6*time.Second)
	s.Update()
	if spriteIndex(w, e) != 2 {
		t.Errorf("Expected index unchanged, got %d", spriteIndex(w, e))
	}
	if b, _ := w.Components.Blink.Get(e); !b.Blinking {
		t.Error("Blink timer still advances without an edge")
	}
}

func TestBlinkDisabled(t *testing.T) {
	w, s := newAnimationWorld(t, vmath.NewScripted(0.5), nil)
	w.Resource.Config.Game.EyeBlink = false
	e := w.PlaceSpeaki(0, 0, 0, 0, 100)
	advance(w, 6*time.Second)
	s.Update()
	if b, _ := w.Components.Blink.Get(e); b.Blinking {
		t.Error("Expected no blink when disabled")
	}
}

// TestMouthClosesWhenVoiceEnds verifies polling and the 40% close roll
func TestMouthClosesWhenVoiceEnds(t *testing.T) {
	monitor := fakeMonitor{7: true}
	w, s := newAnimationWorld(t, vmath.NewScripted(0.3), monitor)
	w.Resource.Config.Game.EyeBlink = false
	e := w.PlaceSpeaki(0, 0, 0, 0, 100)
	w.Components.Voice.Ref(e).Handle = 7
	w.Components.Voice.Ref(e).Active = true

	advance(w, 16*time.Millisecond)
	s.Update()
	if v, _ := w.Components.Voice.Get(e); !v.Active {
		t.Fatal("Expected voice still tracked while playing")
	}

	monitor[7] = false
	advance(w, 16*time.Millisecond)
	s.Update()
	if v, _ := w.Components.Voice.Get(e); v.Active {
		t.Error("Expected voice cleared")
	}
	if spriteIndex(w, e) != 10 {
		t.Errorf("Expected mouth_close to 10, got %d", spriteIndex(w, e))
	}
}

func TestMouthStaysOpenOnHighRoll(t *testing.T) {
	w, s := newAnimationWorld(t, vmath.NewScripted(0.6), fakeMonitor{})
	w.Resource.Config.Game.EyeBlink = false
	e := w.PlaceSpeaki(0, 0, 0, 0, 100)
	w.Components.Voice.Ref(e).Active = true

	advance(w, 16*time.Millisecond)
	s.Update()
	if spriteIndex(w, e) != 0 {
		t.Errorf("Expected index 0 on roll 0.6, got %d", spriteIndex(w, e))
	}
}

// TestGrabExpressionEdges verifies sad on grab and default on release, once each
func TestGrabExpressionEdges(t *testing.T) {
	w, s := newAnimationWorld(t, vmath.NewScripted(0.99), nil)
	w.Resource.Config.Game.EyeBlink = false
	e := w.PlaceSpeaki(0, 0, 0, 0, 100)

	w.Components.Grab.Ref(e).Held = true
	s.Update()
	if spriteIndex(w, e) != 10 {
		t.Fatalf("Expected sad index 10, got %d", spriteIndex(w, e))
	}

	// Level-held does not re-roll
	w.Components.Sprite.Ref(e).Index = 9
	s.Update()
	if spriteIndex(w, e) != 9 {
		t.Error("Expected no change while still held")
	}

	w.Components.Grab.Ref(e).Held = false
	s.Update()
	if spriteIndex(w, e) != 0 {
		t.Errorf("Expected default index on release, got %d", spriteIndex(w, e))
	}
}

func TestBounceReaction(t *testing.T) {
	w, s := newAnimationWorld(t, vmath.NewScripted(0), nil)
	w.Resource.Config.Game.EyeBlink = false
	e := w.PlaceSpeaki(0, 0, 0, 0, 100)

	advance(w, 2*time.Second)
	w.Resource.Transient.Bounced = append(w.Resource.Transient.Bounced, e)
	s.Update()

	evs := drain(w)
	if len(evs) != 1 {
		t.Fatalf("Expected 1 voice request, got %d", len(evs))
	}
	vp := evs[0].Payload.(*event.VoiceRequestPayload)
	if vp.Entity != e || vp.Voice != 16 || vp.Category != event.VoiceBounce || vp.Volume != 0.3 {
		t.Errorf("Unexpected bounce voice %+v", vp)
	}
	if spriteIndex(w, e) != 9 {
		t.Errorf("Expected sad index 9, got %d", spriteIndex(w, e))
	}
	if idle, _ := w.Components.Idle.Get(e); idle.LastIdle != 2*time.Second {
		t.Errorf("Expected idle reset to 2s, got %v", idle.LastIdle)
	}
}

func TestIdleIntervalMonotonic(t *testing.T) {
	prev := IdleInterval(0.1, 0.5)
	for _, f := range []float64{0.2, 0.5, 0.8, 1.0} {
		cur := IdleInterval(f, 0.5)
		if cur > prev {
			t.Errorf("Interval grew with frequency %f: %v > %v", f, cur, prev)
		}
		prev = cur
	}
	if got := IdleInterval(1.0, 0); got != 3*time.Second {
		t.Errorf("Expected 3s base, got %v", got)
	}
}

// TestIdleVoiceFires verifies idle group choice, sprite jump and timer reset
func TestIdleVoiceFires(t *testing.T) {
	// Rolls: alt 0.5 (idle), voice pick 0, image pick 0, new factor 0.25
	w, s := newAnimationWorld(t, vmath.NewScripted(0.5, 0, 0, 0.25), nil)
	w.Resource.Config.Game.EyeBlink = false
	w.Resource.Config.Audio.IdleFrequency = 1.0 // interval = factor + 3s
	e := w.PlaceSpeaki(0, 0, 0, 0, 100)         // factor 0.5

	advance(w, 3500*time.Millisecond)
	s.Update()
	if n := len(drain(w)); n != 0 {
		t.Fatalf("Expected no idle at exactly the interval, got %d", n)
	}

	advance(w, time.Millisecond)
	s.Update()
	evs := drain(w)
	if len(evs) != 1 {
		t.Fatalf("Expected 1 idle voice, got %d", len(evs))
	}
	vp := evs[0].Payload.(*event.VoiceRequestPayload)
	if vp.Voice != 5 || vp.Category != event.VoiceIdle || vp.Entity != e {
		t.Errorf("Unexpected idle voice %+v", vp)
	}
	if spriteIndex(w, e) != 1 {
		t.Errorf("Expected idle image 1, got %d", spriteIndex(w, e))
	}
	idle, _ := w.Components.Idle.Get(e)
	if idle.LastIdle != w.Resource.Time.Now || idle.Factor != 0.25 {
		t.Errorf("Expected timer reset with factor 0.25, got %+v", idle)
	}
}

func TestIdleSkipsHeldAndDisabled(t *testing.T) {
	w, s := newAnimationWorld(t, vmath.NewScripted(0.5), nil)
	w.Resource.Config.Game.EyeBlink = false
	e := w.PlaceSpeaki(0, 0, 0, 0, 100)
	w.Components.Grab.Ref(e).Held = true
	w.Components.Grab.Ref(e).WasHeld = true
	w.Resource.Config.Audio.IdleFrequency = 1

	advance(w, time.Minute)
	s.Update()
	if n := len(drain(w)); n != 0 {
		t.Errorf("Expected held speaki silent, got %d", n)
	}

	w.Components.Grab.Ref(e).Held = false
	w.Components.Grab.Ref(e).WasHeld = false
	w.Resource.Config.Audio.IdleFrequency = 0
	s.Update()
	if n := len(drain(w)); n != 0 {
		t.Errorf("Expected idle disabled at zero frequency, got %d", n)
	}
}
