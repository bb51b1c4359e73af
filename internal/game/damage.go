package game

import (
	"go.uber.org/zap"

	"github.com/EvanderRPT/2dgameengine/internal/ecs"
	"github.com/EvanderRPT/2dgameengine/internal/event"
)

// DamageSystem is event-driven: it subscribes to Collision events and
// applies projectile damage. A projectile hitting an entity with Health
// reduces it and is itself killed; targets at zero hit points are killed.
// It tracks no membership of its own and is not registered with the
// registry or the Runner — its work happens during event dispatch at
// tick start.
type DamageSystem struct {
	registry *ecs.Registry
	bus      *event.Bus
	log      *zap.Logger
}

func NewDamageSystem(r *ecs.Registry, bus *event.Bus, log *zap.Logger) *DamageSystem {
	s := &DamageSystem{registry: r, bus: bus, log: log}
	event.Subscribe(bus, s.onCollision)
	return s
}

func (s *DamageSystem) onCollision(ev event.Collision) {
	s.hit(ev.A, ev.B)
	s.hit(ev.B, ev.A)
}

func (s *DamageSystem) hit(proj, target ecs.Entity) {
	if !ecs.Has[Projectile](s.registry, proj) || !ecs.Has[Health](s.registry, target) {
		return
	}
	p := ecs.Get[Projectile](s.registry, proj)
	h := ecs.Get[Health](s.registry, target)
	h.Current -= p.Damage
	s.log.Debug("projectile hit",
		zap.Int("projectile", proj.ID()),
		zap.Int("target", target.ID()),
		zap.Int("damage", p.Damage),
		zap.Int("hp", h.Current))

	s.registry.KillEntity(proj)
	event.Emit(s.bus, event.EntityKilled{Entity: proj})

	if h.Current <= 0 {
		s.registry.KillEntity(target)
		event.Emit(s.bus, event.EntityKilled{Entity: target})
	}
}
