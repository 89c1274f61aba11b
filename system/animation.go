package system

import (
	"time"

	"github.com/lixenwraith/speaki-box/component"
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/engine"
	"github.com/lixenwraith/speaki-box/event"
	"github.com/lixenwraith/speaki-box/parameter"
	"github.com/lixenwraith/speaki-box/sprite"
	"github.com/lixenwraith/speaki-box/vmath"
)

// AudioMonitor reports whether a started voice is still audible
type AudioMonitor interface {
	Playing(h core.VoiceHandle) bool
}

// AnimationSystem runs the per-speaki sprite automaton and voice timers
// Order per tick: grab expression edges, wall-bounce reactions, blink, mouth close, idle voice
type AnimationSystem struct {
	engine.SystemBase
	graph   *sprite.Graph
	monitor AudioMonitor
}

// NewAnimationSystem creates the animation stage; monitor may be nil, then voices end immediately
func NewAnimationSystem(world *engine.World, graph *sprite.Graph, monitor AudioMonitor) *AnimationSystem {
	return &AnimationSystem{
		SystemBase: engine.NewSystemBase(world),
		graph:      graph,
		monitor:    monitor,
	}
}

func (s *AnimationSystem) Name() string {
	return "animation"
}

func (s *AnimationSystem) Priority() int {
	return parameter.PriorityAnimation
}

// SetMonitor swaps the audio monitor, e.g. when sound is toggled
func (s *AnimationSystem) SetMonitor(m AudioMonitor) {
	s.monitor = m
}

func (s *AnimationSystem) Update() {
	now := s.Resource.Time.Now
	cfg := s.Resource.Config

	s.updateGrabExpressions()
	s.reactToBounces(now)

	if cfg.Game.EyeBlink {
		for _, e := range s.Component.Blink.All() {
			s.updateBlink(e, now)
		}
	}

	for _, e := range s.Component.Voice.All() {
		s.updateMouth(e)
	}

	if cfg.Audio.IdleFrequency > 0 {
		scale := IdleScale(cfg.Audio.IdleFrequency)
		for _, e := range s.Component.Idle.All() {
			s.updateIdle(e, now, scale)
		}
	}
}

// Follow applies edge to e's sprite when the current state has it
func (s *AnimationSystem) Follow(e core.Entity, edge sprite.Edge) bool {
	sp := s.Component.Sprite.Ref(e)
	if sp == nil {
		return false
	}
	next, ok := s.graph.Next(sp.Index, edge)
	if ok {
		sp.Index = next
	}
	return ok
}

// setImage jumps to idx when the graph has it
func (s *AnimationSystem) setImage(e core.Entity, idx int) {
	if sp := s.Component.Sprite.Ref(e); sp != nil && s.graph.Valid(idx) {
		sp.Index = idx
	}
}

func (s *AnimationSystem) updateGrabExpressions() {
	sad := s.Resource.Config.Groups.Sad
	for _, e := range s.Component.Grab.All() {
		g := s.Component.Grab.Ref(e)
		switch {
		case g.Held && !g.WasHeld:
			if idx, ok := pickImage(s.Resource, sad); ok {
				s.setImage(e, idx)
			}
		case !g.Held && g.WasHeld:
			s.setImage(e, 0)
		}
		g.WasHeld = g.Held
	}
}

func (s *AnimationSystem) reactToBounces(now time.Duration) {
	groups := s.Resource.Config.Groups
	for _, e := range s.Resource.Transient.Bounced {
		if !s.World.Alive(e) {
			continue
		}
		requestVoice(s.Resource, e, groups.BounceVoice, event.VoiceBounce)
		if idx, ok := pickImage(s.Resource, groups.Sad); ok {
			s.setImage(e, idx)
		}
		if idle := s.Component.Idle.Ref(e); idle != nil {
			idle.LastIdle = now
		}
	}
}

// updateBlink closes eyes after the cooldown and reopens them after the open duration
func (s *AnimationSystem) updateBlink(e core.Entity, now time.Duration) {
	b := s.Component.Blink.Ref(e)
	rng := s.Resource.Rand

	if b.Blinking {
		if now-b.LastBlink <= b.OpenDuration {
			return
		}
		b.Blinking = false
		s.Follow(e, sprite.EdgeEyeOpen)
		if b.DoubleBlink {
			b.DoubleBlink = false
			b.Cooldown = parameter.BlinkDoubleCooldown
		} else {
			b.Cooldown = vmath.RangeDuration(rng, parameter.BlinkCooldownMin, parameter.BlinkCooldownMax)
		}
		b.LastBlink = now
		return
	}

	if now-b.LastBlink <= b.Cooldown {
		return
	}
	b.Blinking = true
	b.OpenDuration = parameter.BlinkOpenDuration
	s.Follow(e, sprite.EdgeEyeClose)
	b.LastBlink = now
	if b.Cooldown > parameter.BlinkDoubleMinCooldown && rng.Float64() > parameter.BlinkDoubleRoll {
		b.DoubleBlink = true
	}
}

// updateMouth releases the tracked voice once it stops and sometimes closes the mouth
func (s *AnimationSystem) updateMouth(e core.Entity) {
	v := s.Component.Voice.Ref(e)
	if !v.Active {
		return
	}
	if s.monitor != nil && s.monitor.Playing(v.Handle) {
		return
	}
	*v = component.VoiceComponent{}
	if s.Resource.Rand.Float64() < parameter.MouthCloseChance {
		s.Follow(e, sprite.EdgeMouthClose)
	}
}

// IdleScale returns the frequency part of the idle interval, (30/f - 29) seconds
func IdleScale(freq float64) float64 {
	return parameter.IdleFreqNumerator/freq - parameter.IdleFreqOffset
}

// IdleInterval is the wait before the next idle voice for a given factor
func IdleInterval(freq, factor float64) time.Duration {
	return idleWait(IdleScale(freq), factor)
}

func idleWait(scale, factor float64) time.Duration {
	return time.Duration((scale*factor + parameter.IdleBaseSeconds) * float64(time.Second))
}

func (s *AnimationSystem) updateIdle(e core.Entity, now time.Duration, scale float64) {
	if g, ok := s.Component.Grab.Get(e); ok && g.Held {
		return
	}
	idle := s.Component.Idle.Ref(e)
	if now-idle.LastIdle <= idleWait(scale, idle.Factor) {
		return
	}

	res := s.Resource
	groups := res.Config.Groups
	voices, images := groups.IdleVoice, groups.Idle
	if res.Rand.Float64() > parameter.IdleAltRoll {
		voices, images = groups.Idle2Voice, groups.Idle2
	}
	requestVoice(res, e, voices, event.VoiceIdle)
	if idx, ok := pickImage(res, images); ok {
		s.setImage(e, idx)
	}

	idle.LastIdle = now
	idle.Factor = res.Rand.Float64()
}
