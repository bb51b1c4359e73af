package ecs

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// Registry owns all ECS state: one pool per component type id, the
// per-entity signature table, the system table (one instance per concrete
// system type), and the deferred add/kill queues. Single-threaded
// cooperative model: all mutation happens on the game loop goroutine, and
// the only deferred mechanism is entity activation/destruction, both
// resolved at the next Update() call.
type Registry struct {
	numEntities int // high-water mark; entity ids live in [0, numEntities)
	liveCount   int
	freeIDs     []Entity

	typeIDs map[reflect.Type]ComponentID
	pools   []store     // indexed by ComponentID, nil until first Add
	sigs    []Signature // indexed by entity id
	systems map[reflect.Type]System

	active      []bool // entity has been through Update() activation
	killPending []bool

	toAdd  []Entity // pending activation, insertion order
	toKill []Entity

	log *zap.Logger
}

func NewRegistry(log *zap.Logger) *Registry {
	if log == nil {
		log = zap.NewNop()
	}
	return &Registry{
		typeIDs: make(map[reflect.Type]ComponentID, 16),
		systems: make(map[reflect.Type]System, 8),
		toAdd:   make([]Entity, 0, 64),
		toKill:  make([]Entity, 0, 64),
		log:     log,
	}
}

// Reserve pre-sizes the per-entity tables for at least n entities.
func (r *Registry) Reserve(n int) {
	if n <= cap(r.sigs) {
		return
	}
	sigs := make([]Signature, len(r.sigs), n)
	copy(sigs, r.sigs)
	r.sigs = sigs
	active := make([]bool, len(r.active), n)
	copy(active, r.active)
	r.active = active
	kill := make([]bool, len(r.killPending), n)
	copy(kill, r.killPending)
	r.killPending = kill
}

// Len returns the number of live entities (created minus destroyed;
// entities pending activation count as live).
func (r *Registry) Len() int { return r.liveCount }

// CreateEntity allocates an entity handle and queues it for activation at
// the next Update(). Its signature is all-zero until components attach.
// Ids freed by a processed kill are recycled before new ids are minted.
func (r *Registry) CreateEntity() Entity {
	var e Entity
	if n := len(r.freeIDs); n > 0 {
		e = r.freeIDs[n-1]
		r.freeIDs = r.freeIDs[:n-1]
	} else {
		e = Entity(r.numEntities)
		r.numEntities++
		r.sigs = append(r.sigs, 0)
		r.active = append(r.active, false)
		r.killPending = append(r.killPending, false)
	}
	r.sigs[e.ID()] = 0
	r.active[e.ID()] = false
	r.killPending[e.ID()] = false
	r.toAdd = append(r.toAdd, e)
	r.liveCount++
	r.log.Debug("entity created", zap.Int("id", e.ID()))
	return e
}

// KillEntity queues e for destruction at the next Update(). Safe to call
// more than once per tick for the same entity.
func (r *Registry) KillEntity(e Entity) {
	if r.killPending[e.ID()] {
		return
	}
	r.killPending[e.ID()] = true
	r.toKill = append(r.toKill, e)
	r.log.Debug("entity kill queued", zap.Int("id", e.ID()))
}

// Update is the per-tick synchronization point. It first drains the
// pending-add queue, matching each entity's signature against every
// registered system, then drains the kill queue: membership removed from
// every system, signature zeroed, id recycled. The host loop must call
// this exactly once per tick before consulting any system's member list.
func (r *Registry) Update() {
	for _, e := range r.toAdd {
		if r.killPending[e.ID()] {
			continue // killed before first activation; handled below
		}
		r.active[e.ID()] = true
		r.addEntityToSystems(e)
	}
	r.toAdd = r.toAdd[:0]

	for _, e := range r.toKill {
		r.destroyEntity(e)
	}
	r.toKill = r.toKill[:0]
}

// Add attaches a component to e, lazily creating the pool for T, growing
// it to cover e's id, writing v, and setting the signature bit. Repeated
// calls for the same type overwrite: last write wins. For an already
// active entity, system membership is re-synced immediately.
func Add[T any](r *Registry, e Entity, v T) {
	id := TypeID[T](r)
	for int(id) >= len(r.pools) {
		r.pools = append(r.pools, nil)
	}
	if r.pools[id] == nil {
		r.pools[id] = NewPool[T](r.numEntities)
	}
	p := r.pools[id].(*Pool[T])
	if e.ID() >= p.Size() {
		p.Resize(r.numEntities)
	}
	p.Set(e.ID(), v)
	r.sigs[e.ID()].Set(id)
	if r.active[e.ID()] {
		r.syncMembership(e)
	}
}

// Remove clears the signature bit for T on e. The pool slot is left
// untouched; the stale value is invisible because the signature no longer
// advertises it, and readers must never dereference an unadvertised slot.
func Remove[T any](r *Registry, e Entity) {
	id := TypeID[T](r)
	r.sigs[e.ID()].Clear(id)
	if r.active[e.ID()] {
		r.syncMembership(e)
	}
}

// Has reports whether e currently carries a component of type T.
func Has[T any](r *Registry, e Entity) bool {
	return r.sigs[e.ID()].Test(TypeID[T](r))
}

// Get returns a mutable reference to e's component of type T. Calling it
// for a component e does not have is a contract violation and panics;
// guard with Has first.
func Get[T any](r *Registry, e Entity) *T {
	id := TypeID[T](r)
	if !r.sigs[e.ID()].Test(id) {
		panic(fmt.Sprintf("ecs: entity %d has no %s component",
			e.ID(), reflect.TypeOf((*T)(nil)).Elem()))
	}
	return r.pools[id].(*Pool[T]).Get(e.ID())
}

// SignatureOf returns a copy of e's current component signature.
func (r *Registry) SignatureOf(e Entity) Signature { return r.sigs[e.ID()] }

// AddSystem registers s, keyed by its concrete type. Registering a second
// instance of the same type deterministically replaces the first. Active
// entities already matching the system's requirement are fed to it
// immediately.
func (r *Registry) AddSystem(s System) {
	t := reflect.TypeOf(s)
	if _, dup := r.systems[t]; dup {
		r.log.Warn("system replaced", zap.String("type", t.String()))
	}
	r.systems[t] = s
	req := s.base().signature
	for id := 0; id < r.numEntities; id++ {
		if r.active[id] && r.sigs[id].ContainsAll(req) {
			s.base().AddEntity(Entity(id))
		}
	}
}

// HasSystem reports whether a system of concrete type T is registered.
func HasSystem[T any](r *Registry) bool {
	_, ok := r.systems[reflect.TypeOf((*T)(nil))]
	return ok
}

// GetSystem returns the registered system of concrete type T; panics if no
// such system is registered.
func GetSystem[T any](r *Registry) *T {
	s, ok := r.systems[reflect.TypeOf((*T)(nil))]
	if !ok {
		panic(fmt.Sprintf("ecs: system %s not registered", reflect.TypeOf((*T)(nil)).Elem()))
	}
	return any(s).(*T)
}

// RemoveSystem unregisters the system of concrete type T, if present.
func RemoveSystem[T any](r *Registry) {
	delete(r.systems, reflect.TypeOf((*T)(nil)))
}

// addEntityToSystems inserts e into every system whose requirement its
// signature satisfies. Called exactly once per entity, at activation, so
// systems need no dedup check.
func (r *Registry) addEntityToSystems(e Entity) {
	sig := r.sigs[e.ID()]
	for _, s := range r.systems {
		if sig.ContainsAll(s.base().signature) {
			s.base().AddEntity(e)
		}
	}
}

// syncMembership reconciles an active entity's membership after a
// signature change: it joins systems it now satisfies and leaves systems
// it no longer does.
func (r *Registry) syncMembership(e Entity) {
	sig := r.sigs[e.ID()]
	for _, s := range r.systems {
		b := s.base()
		match := sig.ContainsAll(b.signature)
		switch {
		case match && !b.hasEntity(e):
			b.AddEntity(e)
		case !match && b.hasEntity(e):
			b.RemoveEntity(e)
		}
	}
}

func (r *Registry) destroyEntity(e Entity) {
	for _, s := range r.systems {
		s.base().RemoveEntity(e)
	}
	r.sigs[e.ID()] = 0
	r.active[e.ID()] = false
	r.killPending[e.ID()] = false
	r.freeIDs = append(r.freeIDs, e)
	r.liveCount--
	r.log.Debug("entity destroyed", zap.Int("id", e.ID()))
}
