package ecs

// Entity is an opaque integer handle identifying one simulated object.
// It is only meaningful as a key into the Registry that created it; all
// component operations are package-level functions taking that Registry
// explicitly. Entities are comparable and ordered by id.
type Entity int

func (e Entity) ID() int { return int(e) }
