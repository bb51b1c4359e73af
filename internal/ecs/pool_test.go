package ecs

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPoolSetGet(t *testing.T) {
	p := NewPool[int](4)
	require.Equal(t, 4, p.Size())
	require.False(t, p.IsEmpty())

	p.Set(2, 42)
	require.Equal(t, 42, *p.Get(2))

	// Get returns a mutable reference into the slot
	*p.Get(2) = 7
	require.Equal(t, 7, *p.Get(2))
}

func TestPoolResizeZeroesNewSlots(t *testing.T) {
	p := NewPool[int](2)
	p.Set(0, 10)
	p.Set(1, 20)

	p.Resize(5)
	require.Equal(t, 5, p.Size())
	require.Equal(t, 10, *p.Get(0))
	require.Equal(t, 20, *p.Get(1))
	require.Equal(t, 0, *p.Get(4))
}

func TestPoolShrinkThenRegrow(t *testing.T) {
	p := NewPool[int](4)
	p.Set(3, 99)

	// Shrink reslices; regrowing within capacity must not resurrect the
	// old value.
	p.Resize(2)
	require.Equal(t, 2, p.Size())
	p.Resize(4)
	require.Equal(t, 0, *p.Get(3))
}

func TestPoolClear(t *testing.T) {
	p := NewPool[string](3)
	p.Clear()
	require.Equal(t, 0, p.Size())
	require.True(t, p.IsEmpty())
}

func TestPoolOutOfRangePanics(t *testing.T) {
	p := NewPool[int](2)
	require.Panics(t, func() { p.Set(2, 1) })
	require.Panics(t, func() { p.Set(-1, 1) })
	require.Panics(t, func() { p.Get(2) })
}
