// Package book implements a hybrid hash+tree+FIFO order book: each Side
// pairs a price->level map (O(1) lookup) with an intrusive red-black tree
// (O(log N) best-price access), and Book owns the two Sides plus the pools
// they borrow from.
package book

import (
	"matchcore/core"
	"matchcore/pool"
)

// Side is one half of the book (bids or asks): a price->level map for O(1)
// membership plus the red-black tree for O(log N) best-price access. Both
// must stay in lockstep; every method here keeps them consistent in the
// same call.
type Side struct {
	levels map[int64]*core.PriceLevel
	tree   core.Tree

	levelPool *pool.Pool[core.PriceLevel, *core.PriceLevel]
}

func newSide(levelPool *pool.Pool[core.PriceLevel, *core.PriceLevel]) *Side {
	return &Side{
		levels:    make(map[int64]*core.PriceLevel),
		levelPool: levelPool,
	}
}

// getOrCreateLevel returns the level at price, borrowing and inserting a
// new one (into both the map and the tree) if this is the first order at
// that price.
func (s *Side) getOrCreateLevel(price int64) *core.PriceLevel {
	if level, ok := s.levels[price]; ok {
		return level
	}

	level := s.levelPool.Borrow()
	level.Price = price
	s.levels[price] = level
	s.tree.Insert(level)
	return level
}

// removeLevel deletes level from both the map and the tree, then returns it
// to the pool. Precondition: level.IsEmpty().
func (s *Side) removeLevel(level *core.PriceLevel) {
	delete(s.levels, level.Price)
	s.tree.Remove(level)
	s.levelPool.Release(level)
}

// best returns the extremum level for this side: minimum for asks,
// maximum for bids (the caller picks which by passing the right flag).
func (s *Side) best(minimum bool) *core.PriceLevel {
	return s.tree.Best(minimum)
}

// bestPrice returns the extremum price, or 0 if the side is empty — used
// only by tests and read-only accessors.
func (s *Side) bestPrice(minimum bool) int64 {
	level := s.best(minimum)
	if level == nil {
		return 0
	}
	return level.Price
}

// levelAt returns the level at price, or nil. Exposed for tests.
func (s *Side) levelAt(price int64) *core.PriceLevel {
	return s.levels[price]
}

// size returns the number of distinct price levels on this side.
func (s *Side) size() int {
	return len(s.levels)
}
