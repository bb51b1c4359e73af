package ecs

import (
	"fmt"
	"reflect"

	"go.uber.org/zap"
)

// ComponentID is the dense integer id assigned to a component type the
// first time it is used with a Registry; range [0, MaxComponents).
type ComponentID int

// TypeID returns the component id for T, assigning the next free id on
// first use. Ids are stable for the Registry's lifetime and never reused.
// Exceeding MaxComponents distinct types is a fatal programmer error.
func TypeID[T any](r *Registry) ComponentID {
	return r.registerType(reflect.TypeOf((*T)(nil)).Elem())
}

func (r *Registry) registerType(t reflect.Type) ComponentID {
	if id, ok := r.typeIDs[t]; ok {
		return id
	}
	id := ComponentID(len(r.typeIDs))
	if int(id) >= MaxComponents {
		panic(fmt.Sprintf("ecs: component type %s exceeds MaxComponents (%d)", t, MaxComponents))
	}
	r.typeIDs[t] = id
	r.log.Debug("component type registered",
		zap.String("type", t.String()), zap.Int("id", int(id)))
	return id
}
