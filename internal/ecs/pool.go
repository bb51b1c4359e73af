package ecs

import "fmt"

// store is the type-erased face of a component pool. The Registry holds one
// store per component type id and only ever downcasts to the concrete
// Pool[T] at the generic Add/Get call sites, where T is statically known.
type store interface {
	Resize(n int)
	Clear()
	Size() int
}

// Pool is dense, contiguous storage for one component type, logically
// indexed by entity id. Slot validity is governed entirely by the owning
// entity's signature bit — the pool never knows which slots are live, and
// removed components leave stale data behind that readers must not touch.
type Pool[T any] struct {
	data []T
}

func NewPool[T any](size int) *Pool[T] {
	return &Pool[T]{data: make([]T, size)}
}

// Resize grows or shrinks the pool to exactly n slots, zero-valuing any
// new slots.
func (p *Pool[T]) Resize(n int) {
	if n <= len(p.data) {
		p.data = p.data[:n]
		return
	}
	if n <= cap(p.data) {
		old := len(p.data)
		p.data = p.data[:n]
		var zero T
		for i := old; i < n; i++ {
			p.data[i] = zero
		}
		return
	}
	grown := make([]T, n)
	copy(grown, p.data)
	p.data = grown
}

func (p *Pool[T]) Clear() { p.data = p.data[:0] }

func (p *Pool[T]) Size() int     { return len(p.data) }
func (p *Pool[T]) IsEmpty() bool { return len(p.data) == 0 }

// Set overwrites the slot at index. Out-of-range is a programmer error.
func (p *Pool[T]) Set(index int, v T) {
	if index < 0 || index >= len(p.data) {
		panic(fmt.Sprintf("ecs: pool set index %d out of range (size %d)", index, len(p.data)))
	}
	p.data[index] = v
}

// Get returns a mutable reference to the slot at index.
func (p *Pool[T]) Get(index int) *T {
	if index < 0 || index >= len(p.data) {
		panic(fmt.Sprintf("ecs: pool get index %d out of range (size %d)", index, len(p.data)))
	}
	return &p.data[index]
}
