package game

import (
	"time"

	"github.com/EvanderRPT/2dgameengine/internal/ecs"
)

// MovementSystem integrates velocity into position for every entity with a
// Transform and a RigidBody. Phase 0 (Update).
type MovementSystem struct {
	ecs.BaseSystem
	registry *ecs.Registry
}

func NewMovementSystem(r *ecs.Registry) *MovementSystem {
	s := &MovementSystem{registry: r}
	ecs.Require[Transform](r, s)
	ecs.Require[RigidBody](r, s)
	return s
}

func (s *MovementSystem) Phase() Phase { return PhaseUpdate }

func (s *MovementSystem) Update(dt time.Duration) {
	secs := dt.Seconds()
	for _, e := range s.Entities() {
		t := ecs.Get[Transform](s.registry, e)
		rb := ecs.Get[RigidBody](s.registry, e)
		t.X += rb.VX * secs
		t.Y += rb.VY * secs
	}
}
