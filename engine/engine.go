// Package engine implements the matching state machine: the single public
// operation AcceptOrder enforces price-time priority and the
// cross-the-spread algorithm by delegating to a book.Book and emitting
// events to a core.Sink.
package engine

import (
	"fmt"

	"matchcore/book"
	"matchcore/core"
	"matchcore/pool"
)

// Engine is the matching state machine. It is deliberately free of any
// global state so a process can run one Engine per instrument.
type Engine struct {
	book *book.Book
	sink core.Sink

	orderPool *pool.Pool[core.Order, *core.Order]
	levelPool *pool.Pool[core.PriceLevel, *core.PriceLevel]
}

// New constructs an Engine with its own pools and book, sized from cfg.
// sink receives every AcceptedEvent/TradeEvent the engine produces,
// synchronously, on whatever goroutine calls AcceptOrder — the engine
// itself is just a state machine; the two-thread topology is the caller's
// responsibility, see cmd/engine.
func New(cfg core.Config, sink core.Sink) *Engine {
	orderPool := pool.New[core.Order, *core.Order]("orders", cfg.OrderPoolCapacity)
	levelPool := pool.New[core.PriceLevel, *core.PriceLevel]("levels", cfg.LevelPoolCapacity)

	return &Engine{
		book:      book.New(orderPool, levelPool),
		sink:      sink,
		orderPool: orderPool,
		levelPool: levelPool,
	}
}

// Book exposes the underlying order book for read-only inspection (best
// bid/ask, depth), primarily for tests.
func (e *Engine) Book() *book.Book {
	return e.book
}

// OrderPoolStats returns the order pool's current available count and
// fixed capacity, so tests can confirm every borrowed order is eventually
// released.
func (e *Engine) OrderPoolStats() (available, capacity int) {
	return e.orderPool.Available(), e.orderPool.Capacity()
}

// LevelPoolStats returns the level pool's current available count and
// fixed capacity, so tests can confirm every borrowed level is eventually
// released.
func (e *Engine) LevelPoolStats() (available, capacity int) {
	return e.levelPool.Available(), e.levelPool.Capacity()
}

// AcceptOrder is the engine's single public operation. price and qty must
// be positive; id is caller-assigned (the wire frame's order_id). A
// qty <= 0 or price <= 0 reaching the engine is a programming error —
// validation is the gateway's job, upstream of here — and panics rather
// than silently misbehaving.
func (e *Engine) AcceptOrder(id, price, qty int64, side core.Side) {
	if qty <= 0 {
		panic(fmt.Sprintf("engine: AcceptOrder called with non-positive qty %d for order %d; validation must happen upstream of the core", qty, id))
	}
	if price <= 0 {
		panic(fmt.Sprintf("engine: AcceptOrder called with non-positive price %d for order %d; validation must happen upstream of the core", price, id))
	}

	filled := e.book.Match(id, price, qty, side, e.sink)
	remaining := qty - filled

	if remaining > 0 {
		e.book.AddOrder(id, price, remaining, side)
		e.sink.OnAccepted(core.AcceptedEvent{
			OrderID: id,
			Price:   price,
			Qty:     remaining,
			Side:    side,
		})
	}
}
