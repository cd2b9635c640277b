package pool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePoolable struct {
	value int
	idx   int32
}

func (f *fakePoolable) Reset()              { f.value = 0 }
func (f *fakePoolable) PoolIndex() int32     { return f.idx }
func (f *fakePoolable) SetPoolIndex(i int32) { f.idx = i }

func TestBorrowReturnsResetObject(t *testing.T) {
	p := New[fakePoolable, *fakePoolable]("fake", 4)

	obj := p.Borrow()
	obj.value = 42
	p.Release(obj)

	again := p.Borrow()
	assert.Equal(t, 0, again.value)
}

func TestBorrowDecreasesAvailability(t *testing.T) {
	p := New[fakePoolable, *fakePoolable]("fake", 4)
	require.Equal(t, 4, p.Available())

	p.Borrow()
	assert.Equal(t, 3, p.Available())
}

func TestReleaseReturnsSlotToFreeList(t *testing.T) {
	p := New[fakePoolable, *fakePoolable]("fake", 4)
	obj := p.Borrow()
	require.Equal(t, 3, p.Available())

	p.Release(obj)
	assert.Equal(t, 4, p.Available())
}

func TestBorrowExhaustionPanics(t *testing.T) {
	p := New[fakePoolable, *fakePoolable]("fake", 2)
	p.Borrow()
	p.Borrow()

	assert.Panics(t, func() {
		p.Borrow()
	})
}

func TestDoubleReleasePanics(t *testing.T) {
	p := New[fakePoolable, *fakePoolable]("fake", 2)
	obj := p.Borrow()

	p.Release(obj)
	assert.Panics(t, func() {
		p.Release(obj)
	})
}

func TestCapacityIsFixed(t *testing.T) {
	p := New[fakePoolable, *fakePoolable]("fake", 8)
	assert.Equal(t, 8, p.Capacity())

	for i := 0; i < 8; i++ {
		p.Borrow()
	}
	assert.Equal(t, 8, p.Capacity())
}

func TestNewPanicsOnNonPositiveCapacity(t *testing.T) {
	assert.Panics(t, func() {
		New[fakePoolable, *fakePoolable]("fake", 0)
	})
}

// TestManyBorrowReleaseCyclesReturnToFullAvailability exercises P6-style
// "pool closure": after many borrow/release cycles, the pool must return to
// full availability and every borrowed object must come back clean.
func TestManyBorrowReleaseCyclesReturnToFullAvailability(t *testing.T) {
	p := New[fakePoolable, *fakePoolable]("fake", 16)

	for round := 0; round < 1000; round++ {
		var borrowed []*fakePoolable
		for i := 0; i < 16; i++ {
			obj := p.Borrow()
			require.Equal(t, 0, obj.value)
			obj.value = i + 1
			borrowed = append(borrowed, obj)
		}
		require.Equal(t, 0, p.Available())

		for _, obj := range borrowed {
			p.Release(obj)
		}
	}

	assert.Equal(t, 16, p.Available())
}
