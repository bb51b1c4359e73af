package ecs

// MaxComponents is the ceiling on distinct component types per Registry.
// One machine word keeps the signature compare a single AND.
const MaxComponents = 64

// Signature is a fixed-width bitset: bit i is set iff the entity has a live
// component of type id i (or, for a system, iff type id i is required).
type Signature uint64

func (s *Signature) Set(id ComponentID)   { *s |= 1 << uint(id) }
func (s *Signature) Clear(id ComponentID) { *s &^= 1 << uint(id) }

func (s Signature) Test(id ComponentID) bool { return s&(1<<uint(id)) != 0 }

// ContainsAll reports whether every bit in req is also set in s.
func (s Signature) ContainsAll(req Signature) bool { return s&req == req }

func (s Signature) IsZero() bool { return s == 0 }
