package ecs

// System is implemented by every concrete system via an embedded
// BaseSystem. Systems never own component data; they hold a requirement
// signature and the ids of their current member entities.
type System interface {
	base() *BaseSystem
}

// BaseSystem carries the state shared by all systems: the required
// component signature (built once, before the system sees any entities)
// and the member list in insertion order. The zero value is ready to use.
type BaseSystem struct {
	signature Signature
	entities  []Entity
}

func (s *BaseSystem) base() *BaseSystem { return s }

// Require marks T as required for membership in s. Must be called before
// the system is registered or handed any entities.
func Require[T any](r *Registry, s System) {
	s.base().signature.Set(TypeID[T](r))
}

// Signature returns the system's component requirement bitset.
func (s *BaseSystem) Signature() Signature { return s.signature }

// AddEntity appends e to the member list. The Registry only calls this for
// an entity the system does not already have, so no dedup check is done.
func (s *BaseSystem) AddEntity(e Entity) {
	s.entities = append(s.entities, e)
}

// RemoveEntity removes every entry equal to e, preserving order.
func (s *BaseSystem) RemoveEntity(e Entity) {
	kept := s.entities[:0]
	for _, m := range s.entities {
		if m != e {
			kept = append(kept, m)
		}
	}
	s.entities = kept
}

// Entities returns a snapshot of the member list. Mutating the returned
// slice does not affect membership.
func (s *BaseSystem) Entities() []Entity {
	out := make([]Entity, len(s.entities))
	copy(out, s.entities)
	return out
}

func (s *BaseSystem) Len() int { return len(s.entities) }

func (s *BaseSystem) hasEntity(e Entity) bool {
	for _, m := range s.entities {
		if m == e {
			return true
		}
	}
	return false
}
