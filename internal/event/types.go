package event

import "github.com/EvanderRPT/2dgameengine/internal/ecs"

// Collision is emitted by the collision system for each overlapping
// collider pair in a tick. A < B by entity id.
type Collision struct {
	A ecs.Entity
	B ecs.Entity
}

// EntityKilled is emitted when a system queues an entity for destruction.
type EntityKilled struct {
	Entity ecs.Entity
}
