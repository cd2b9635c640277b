// Package pool implements fixed-capacity object arenas: a LIFO free list
// over a contiguous, pre-allocated array. There is no background GC
// interaction once warmed up — Borrow/Release only ever touch the
// free-list slice and the backing array, both owned by whichever single
// thread calls them.
package pool

import "fmt"

// Poolable is implemented by types that can be arena-managed: Reset clears
// all fields and linkage pointers, and PoolIndex/SetPoolIndex let the pool
// hand the object its own arena slot back on Release without a separate
// side table. Reset/PoolIndex/SetPoolIndex all take pointer receivers (they
// mutate the object in place), so it is *T, not T, that implements this —
// see the PT type parameter below.
type Poolable interface {
	Reset()
	PoolIndex() int32
	SetPoolIndex(int32)
}

// Pool is a fixed-capacity LIFO arena storing T by value in a contiguous
// slice; PT is the pointer type *T, constrained to implement Poolable, so
// Borrow/Release can call its pointer-receiver methods on a slot's address
// without copying the slot out of storage. It is explicitly not
// goroutine-safe: only the matching thread ever touches a given pool.
type Pool[T any, PT interface {
	*T
	Poolable
}] struct {
	storage []T
	free    []int32
	name    string
}

// New pre-allocates capacity instances of T and fills the free list so the
// first capacity Borrow calls are satisfied without further allocation.
func New[T any, PT interface {
	*T
	Poolable
}](name string, capacity int) *Pool[T, PT] {
	if capacity <= 0 {
		panic(fmt.Sprintf("pool %s: capacity must be positive, got %d", name, capacity))
	}

	p := &Pool[T, PT]{
		storage: make([]T, capacity),
		free:    make([]int32, capacity),
		name:    name,
	}
	for i := 0; i < capacity; i++ {
		p.free[i] = int32(capacity - 1 - i)
	}
	return p
}

// Borrow hands out a cleared *T. Pool exhaustion indicates a
// capacity-planning bug, not a transient condition, so Borrow panics rather
// than returning an error.
func (p *Pool[T, PT]) Borrow() *T {
	n := len(p.free)
	if n == 0 {
		panic(fmt.Sprintf("pool %s: exhausted (capacity=%d); this is a capacity-planning bug, not a transient condition", p.name, cap(p.storage)))
	}

	idx := p.free[n-1]
	p.free = p.free[:n-1]

	obj := &p.storage[idx]
	pt := PT(obj)
	pt.Reset()
	pt.SetPoolIndex(idx)
	return obj
}

// Release clears obj and returns its slot to the free list. It panics if
// the free list is already full, since a release past capacity means an
// object was released twice. That is the only check: a double release, or
// the release of an object the pool never lent out, goes undetected while
// other objects are still on loan.
func (p *Pool[T, PT]) Release(obj *T) {
	if len(p.free) >= cap(p.free) {
		panic(fmt.Sprintf("pool %s: release would overflow capacity %d; an object was released twice", p.name, cap(p.free)))
	}
	pt := PT(obj)
	idx := pt.PoolIndex()
	pt.Reset()
	p.free = append(p.free, idx)
}

// Available returns the current free-slot count, for observation and tests
// only.
func (p *Pool[T, PT]) Available() int {
	return len(p.free)
}

// Capacity returns the pool's fixed capacity.
func (p *Pool[T, PT]) Capacity() int {
	return cap(p.storage)
}
