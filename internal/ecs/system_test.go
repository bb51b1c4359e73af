package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testPos struct{ X, Y float64 }
type testVel struct{ VX, VY float64 }
type testHP struct{ Current int }

type moverSystem struct {
	BaseSystem
}

func newMoverSystem(r *Registry) *moverSystem {
	s := &moverSystem{}
	Require[testPos](r, s)
	Require[testVel](r, s)
	return s
}

func TestRequireBuildsSignature(t *testing.T) {
	r := NewRegistry(nil)
	s := newMoverSystem(r)

	sig := s.Signature()
	require.True(t, sig.Test(TypeID[testPos](r)))
	require.True(t, sig.Test(TypeID[testVel](r)))
	require.False(t, sig.Test(TypeID[testHP](r)))
}

func TestSystemAddRemoveEntity(t *testing.T) {
	var s BaseSystem
	s.AddEntity(0)
	s.AddEntity(1)
	s.AddEntity(2)
	require.Equal(t, 3, s.Len())

	s.RemoveEntity(1)
	require.Equal(t, []Entity{0, 2}, s.Entities())

	// removing an absent entity is a no-op
	s.RemoveEntity(9)
	require.Equal(t, 2, s.Len())
}

func TestSystemEntitiesSnapshot(t *testing.T) {
	var s BaseSystem
	s.AddEntity(0)
	s.AddEntity(1)

	snap := s.Entities()
	snap[0] = 99
	require.Equal(t, []Entity{0, 1}, s.Entities())
}
