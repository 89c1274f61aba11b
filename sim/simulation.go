// Package sim wires the world, systems and request bus into one tickable simulation
package sim

import (
	"time"

	"github.com/lixenwraith/speaki-box/component"
	"github.com/lixenwraith/speaki-box/config"
	"github.com/lixenwraith/speaki-box/core"
	"github.com/lixenwraith/speaki-box/engine"
	"github.com/lixenwraith/speaki-box/event"
	"github.com/lixenwraith/speaki-box/input"
	"github.com/lixenwraith/speaki-box/parameter"
	"github.com/lixenwraith/speaki-box/physics"
	"github.com/lixenwraith/speaki-box/sprite"
	"github.com/lixenwraith/speaki-box/status"
	"github.com/lixenwraith/speaki-box/system"
	"github.com/lixenwraith/speaki-box/vmath"
	"go.uber.org/zap"
)

// Input is everything the host observed since the previous tick
// Window is used as-is unless WindowPos is valid, then the move is derived from the previous position
type Input struct {
	Delta     time.Duration
	Pointer   input.Pointer
	Window    input.WindowMove
	WindowPos input.WindowPos
}

// Simulation owns the world and must be driven from a single goroutine
// Tick advances state; Flush drains the request bus through registered handlers
type Simulation struct {
	cfg    *config.Config
	graph  *sprite.Graph
	logger *zap.Logger
	rng    vmath.Source

	world     *engine.World
	queue     *event.EventQueue
	router    *event.Router[*Simulation]
	animation *system.AnimationSystem

	monitor system.AudioMonitor
	player  Player
}

// Option configures a Simulation at construction
type Option func(*Simulation)

// WithRand injects the single randomness source used by every stage
func WithRand(src vmath.Source) Option {
	return func(s *Simulation) { s.rng = src }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Simulation) { s.logger = l }
}

// WithMonitor sets the audio completion capability polled for mouth closing
func WithMonitor(m system.AudioMonitor) Option {
	return func(s *Simulation) { s.monitor = m }
}

// WithPlayer routes voice requests to p and uses it as the audio monitor
func WithPlayer(p Player) Option {
	return func(s *Simulation) {
		s.player = p
		s.monitor = p
	}
}

// New builds a simulation over a host-owned config, read every tick
func New(cfg *config.Config, graph *sprite.Graph, opts ...Option) *Simulation {
	s := &Simulation{
		cfg:    cfg,
		graph:  graph,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = vmath.NewTimeRand()
	}

	s.queue = event.NewEventQueue(parameter.EventQueueInitialCap)
	s.world = engine.NewWorld(cfg, s.queue, s.rng)
	s.router = event.NewRouter[*Simulation](s.queue)

	s.animation = system.NewAnimationSystem(s.world, graph, s.monitor)
	s.world.AddSystem(system.NewInteractionSystem(s.world))
	s.world.AddSystem(system.NewPhysicsSystem(s.world, s.logger))
	s.world.AddSystem(s.animation)

	s.router.Register(&LifecycleHandler{})
	if s.player != nil {
		s.router.Register(&VoiceHandler{Player: s.player})
	}
	return s
}

// World exposes the entity store for renderers; treat as read-only outside the tick goroutine
func (s *Simulation) World() *engine.World {
	return s.world
}

// Router allows hosts to register additional handlers before the first Flush
func (s *Simulation) Router() *event.Router[*Simulation] {
	return s.router
}

// Config returns the live configuration
func (s *Simulation) Config() *config.Config {
	return s.cfg
}

// Graph returns the sprite-state graph
func (s *Simulation) Graph() *sprite.Graph {
	return s.graph
}

// Status returns the metrics registry
func (s *Simulation) Status() *status.Registry {
	return s.world.Resource.Status
}

// Resize sets the drawable surface extent in simulation units
func (s *Simulation) Resize(width, height float64) {
	s.world.Resource.Bounds.Width = width
	s.world.Resource.Bounds.Height = height
}

// Tick runs one frame: interaction, physics passes, animation
// Requests produced here wait in the bus until Flush
func (s *Simulation) Tick(in Input) {
	res := &s.world.Resource
	res.Time.Advance(in.Delta)
	res.Transient.Reset()
	res.Input.Pointer = in.Pointer
	res.Input.Window = in.Window
	if in.WindowPos.Valid {
		dx, dy, moved := res.Window.Observe(in.WindowPos.X, in.WindowPos.Y)
		res.Input.Window = input.WindowMove{DX: float64(dx), DY: float64(dy), Moved: moved}
	}

	s.world.Update()
}

// Flush dispatches all pending requests in FIFO order, returns how many were handled
func (s *Simulation) Flush() int {
	return s.router.DispatchAll(s)
}

// Pending returns the number of queued requests
func (s *Simulation) Pending() int {
	return s.queue.Len()
}

// Seed requests count speakis spread across the upper half of the surface
func (s *Simulation) Seed(count int) {
	hw, hh := s.world.Resource.Bounds.Half()
	for i := 0; i < count; i++ {
		x := (s.rng.Float64() - 0.5) * 2 * hw
		y := hh*parameter.SeedBandBase + s.rng.Float64()*hh*parameter.SeedBandHeight
		vx := (s.rng.Float64() - 0.5) * parameter.SeedSpreadX
		vy := s.rng.Float64() * parameter.SeedLiftY
		s.world.Resource.Emit(event.EventSpawnRequest, &event.SpawnRequestPayload{X: x, Y: y, VX: vx, VY: vy})
	}
}

// Spawn realizes a spawn request immediately and returns the new speaki
// A pending click-to-add drag adopts the new speaki as its held body
func (s *Simulation) Spawn(x, y, vx, vy float64) core.Entity {
	cfg := s.cfg
	spec := engine.SpeakiSpec{
		X: x, Y: y, VX: vx, VY: vy,
		Size:          cfg.Game.Size,
		RotationSpeed: vmath.Range(s.rng, -parameter.RotationJitter, parameter.RotationJitter),
		BlinkCooldown: vmath.RangeDuration(s.rng, parameter.BlinkCooldownMin, parameter.BlinkCooldownMax),
		IdleFactor:    s.rng.Float64(),
	}
	if cfg.Shiny.Enabled && s.rng.Float64() < cfg.Shiny.SpawnChance {
		spec.Shiny = true
		spec.Glow = cfg.Shiny.GlowColor
		spec.ShinyCountdown = physics.ExplosionInterval(cfg.Shiny, s.rng)
	}

	e := s.world.SpawnSpeaki(spec)

	if drag := s.world.Resource.Drag; drag.Active && drag.Entity == core.None {
		drag.Entity = e
		s.world.Components.Grab.Set(e, component.GrabComponent{Held: true})
	}

	st := s.world.Resource.Status
	st.Counter(status.KeySpawned).Add(1)
	st.Counter(status.KeyAlive).Store(int64(s.world.Count()))
	s.logger.Debug("spawn",
		zap.Uint64("entity", uint64(e)),
		zap.Float64("x", x),
		zap.Float64("y", y),
		zap.Bool("shiny", spec.Shiny),
	)
	return e
}

// Despawn realizes a despawn request; unknown entities are ignored
func (s *Simulation) Despawn(e core.Entity) bool {
	if !s.world.Alive(e) {
		return false
	}
	s.world.DestroyEntity(e)

	st := s.world.Resource.Status
	st.Counter(status.KeyDespawned).Add(1)
	st.Counter(status.KeyAlive).Store(int64(s.world.Count()))
	s.logger.Debug("despawn", zap.Uint64("entity", uint64(e)))
	return true
}

// VoiceStarted records a playing voice on e and opens its mouth when the state allows
func (s *Simulation) VoiceStarted(e core.Entity, h core.VoiceHandle) {
	if !s.world.Alive(e) {
		return
	}
	s.world.Components.Voice.Set(e, component.VoiceComponent{Handle: h, Active: true})
	s.animation.Follow(e, sprite.EdgeMouthOpen)
}

// Alive reports whether e is still in the world
func (s *Simulation) Alive(e core.Entity) bool {
	return s.world.Alive(e)
}

// Now returns accumulated simulation time
func (s *Simulation) Now() time.Duration {
	return s.world.Resource.Time.Now
}
