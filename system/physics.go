package system

import (
	"github.com/lixenwraith/speaki-box/engine"
	"github.com/lixenwraith/speaki-box/event"
	"github.com/lixenwraith/speaki-box/parameter"
	"github.com/lixenwraith/speaki-box/physics"
	"github.com/lixenwraith/speaki-box/status"
	"go.uber.org/zap"
)

// PhysicsSystem runs the body passes in fixed order and reports their outcomes
// gravity, integrate, walls, pairwise collision, merge, explosion, rotation, window inertia
type PhysicsSystem struct {
	engine.SystemBase
	logger *zap.Logger

	collider   physics.Collider
	merges     []physics.Merge
	explosions []physics.Explosion
}

// NewPhysicsSystem creates the physics stage
func NewPhysicsSystem(world *engine.World, logger *zap.Logger) engine.System {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PhysicsSystem{
		SystemBase: engine.NewSystemBase(world),
		logger:     logger.Named("physics"),
	}
}

func (s *PhysicsSystem) Name() string {
	return "physics"
}

func (s *PhysicsSystem) Priority() int {
	return parameter.PriorityPhysics
}

func (s *PhysicsSystem) Update() {
	w := s.World
	res := s.Resource
	cfg := res.Config
	bounds := res.Bounds

	physics.ApplyGravity(w, cfg.Physics.Gravity)
	physics.Integrate(w)

	walls := physics.ComputeWalls(bounds.Width, bounds.Height, cfg.Border)
	res.Transient.Bounced = physics.ResolveWalls(w, walls, cfg.Physics, res.Rand, res.Transient.Bounced[:0])
	for _, e := range res.Transient.Bounced {
		res.Emit(event.EventWallBounce, &event.WallBouncePayload{Entity: e})
	}
	res.Status.Counter(status.KeyBounces).Add(int64(len(res.Transient.Bounced)))

	s.collider.ResolveCollisions(w, cfg.Physics)

	s.merges = physics.ResolveMerges(w, cfg.Merge, cfg.EffectiveMaxSize(), s.collider.Contacts(), s.merges[:0])
	for _, m := range s.merges {
		s.logger.Debug("merge",
			zap.Uint64("survivor", uint64(m.Survivor)),
			zap.Uint64("consumed", uint64(m.Consumed)),
			zap.Float64("size", m.Size),
		)
		res.Emit(event.EventMerge, &event.MergePayload{
			Survivor: m.Survivor,
			Consumed: m.Consumed,
			X:        m.X,
			Y:        m.Y,
			VX:       m.VX,
			VY:       m.VY,
			Size:     m.Size,
		})
	}
	if n := len(s.merges); n > 0 {
		res.Status.Counter(status.KeyMerges).Add(int64(n))
		res.Status.Counter(status.KeyAlive).Store(int64(w.Count()))
	}

	if cfg.Shiny.Enabled {
		s.explosions = physics.UpdateExplosions(w, cfg.Shiny, res.Time.Delta, res.Rand, s.explosions[:0])
		for _, x := range s.explosions {
			s.logger.Debug("explosion", zap.Uint64("entity", uint64(x.Source)), zap.Float64("radius", x.Radius))
			res.Emit(event.EventShockwave, &event.ShockwavePayload{Entity: x.Source, X: x.X, Y: x.Y, Radius: x.Radius})
		}
		res.Status.Counter(status.KeyExplosions).Add(int64(len(s.explosions)))
	}

	physics.Rotate(w, cfg.Physics.RotationSpeed)

	if win := res.Input.Window; win.Moved && cfg.Window.Inertia {
		physics.ApplyWindowInertia(w, win.DX, win.DY, cfg.Window.Strength)
	}
}
