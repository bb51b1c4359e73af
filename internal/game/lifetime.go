package game

import (
	"time"

	"github.com/EvanderRPT/2dgameengine/internal/ecs"
	"github.com/EvanderRPT/2dgameengine/internal/event"
)

// LifetimeSystem counts down each entity's Lifetime and queues expired
// entities for destruction. Phase 0 (Update).
type LifetimeSystem struct {
	ecs.BaseSystem
	registry *ecs.Registry
	bus      *event.Bus
}

func NewLifetimeSystem(r *ecs.Registry, bus *event.Bus) *LifetimeSystem {
	s := &LifetimeSystem{registry: r, bus: bus}
	ecs.Require[Lifetime](r, s)
	return s
}

func (s *LifetimeSystem) Phase() Phase { return PhaseUpdate }

func (s *LifetimeSystem) Update(dt time.Duration) {
	for _, e := range s.Entities() {
		lt := ecs.Get[Lifetime](s.registry, e)
		lt.Remaining -= dt
		if lt.Remaining <= 0 {
			s.registry.KillEntity(e)
			event.Emit(s.bus, event.EntityKilled{Entity: e})
		}
	}
}
