package game

import (
	"time"

	"go.uber.org/zap"

	"github.com/EvanderRPT/2dgameengine/internal/ecs"
	"github.com/EvanderRPT/2dgameengine/internal/event"
)

// CollisionSystem runs an AABB pair test over every entity with a
// Transform and a BoxCollider and emits one Collision event per
// overlapping pair. Phase 1 (PostUpdate), after movement has settled.
type CollisionSystem struct {
	ecs.BaseSystem
	registry *ecs.Registry
	bus      *event.Bus
	log      *zap.Logger
}

func NewCollisionSystem(r *ecs.Registry, bus *event.Bus, log *zap.Logger) *CollisionSystem {
	s := &CollisionSystem{registry: r, bus: bus, log: log}
	ecs.Require[Transform](r, s)
	ecs.Require[BoxCollider](r, s)
	return s
}

func (s *CollisionSystem) Phase() Phase { return PhasePostUpdate }

func (s *CollisionSystem) Update(_ time.Duration) {
	members := s.Entities()
	for i := 0; i < len(members); i++ {
		for j := i + 1; j < len(members); j++ {
			a, b := members[i], members[j]
			if !s.overlap(a, b) {
				continue
			}
			if b < a {
				a, b = b, a
			}
			event.Emit(s.bus, event.Collision{A: a, B: b})
			s.log.Debug("collision",
				zap.Int("a", a.ID()), zap.Int("b", b.ID()))
		}
	}
}

func (s *CollisionSystem) overlap(a, b ecs.Entity) bool {
	ta := ecs.Get[Transform](s.registry, a)
	ca := ecs.Get[BoxCollider](s.registry, a)
	tb := ecs.Get[Transform](s.registry, b)
	cb := ecs.Get[BoxCollider](s.registry, b)

	ax := ta.X + ca.OffsetX
	ay := ta.Y + ca.OffsetY
	bx := tb.X + cb.OffsetX
	by := tb.Y + cb.OffsetY

	return ax < bx+float64(cb.Width) &&
		ax+float64(ca.Width) > bx &&
		ay < by+float64(cb.Height) &&
		ay+float64(ca.Height) > by
}
