package book

import (
	"github.com/google/uuid"

	"matchcore/core"
	"matchcore/pool"
)

// Book owns both sides of the market for one instrument and the two pools
// their orders and levels borrow from. It is called only by Engine, and
// only from the matching thread.
type Book struct {
	Bids *Side
	Asks *Side

	orderPool *pool.Pool[core.Order, *core.Order]
	levelPool *pool.Pool[core.PriceLevel, *core.PriceLevel]
}

// New constructs a Book over the given pools. The pools are shared across
// both sides: one order pool and one level pool total, not one per side.
func New(orderPool *pool.Pool[core.Order, *core.Order], levelPool *pool.Pool[core.PriceLevel, *core.PriceLevel]) *Book {
	return &Book{
		Bids:      newSide(levelPool),
		Asks:      newSide(levelPool),
		orderPool: orderPool,
		levelPool: levelPool,
	}
}

func (b *Book) sideFor(side core.Side) *Side {
	if side == core.SideBuy {
		return b.Bids
	}
	return b.Asks
}

func (b *Book) oppositeSideFor(side core.Side) *Side {
	return b.sideFor(side.Opposite())
}

// AddOrder appends a resting order to the FIFO of level price on side,
// creating the level (and inserting it into the tree) if absent.
// Precondition: qty > 0.
func (b *Book) AddOrder(id, price, qty int64, side core.Side) *core.Order {
	order := b.orderPool.Borrow()
	order.ID = id
	order.Price = price
	order.Qty = qty
	order.Side = side

	level := b.sideFor(side).getOrCreateLevel(price)
	level.AddOrder(order)
	return order
}

// Match executes the crossing loop against the opposite side and returns
// the quantity filled. It walks opposite-side levels in price order (best
// first), and within each level in FIFO time-priority order, emitting a
// passive Trade then an aggressor Trade for every fill slice, stopping
// when the incoming order is fully filled or no further opposite level
// crosses.
func (b *Book) Match(id, price, qty int64, side core.Side, sink core.Sink) (filledQty int64) {
	opposite := b.oppositeSideFor(side)
	remaining := qty

	for remaining > 0 {
		level := opposite.best(side == core.SideBuy)
		if level == nil {
			break
		}
		if side == core.SideBuy && level.Price > price {
			break
		}
		if side == core.SideSell && level.Price < price {
			break
		}

		remaining = b.matchLevel(level, remaining, id, side, opposite, sink)
	}

	return qty - remaining
}

// matchLevel fills against one price level's FIFO until either the
// incoming quantity is exhausted or the level's FIFO is exhausted, then
// removes the level if it emptied.
func (b *Book) matchLevel(level *core.PriceLevel, qty, incomingID int64, incomingSide core.Side, opposite *Side, sink core.Sink) int64 {
	head := level.Front()

	for qty > 0 && head != nil {
		tradeQty := qty
		if head.Qty < tradeQty {
			tradeQty = head.Qty
		}

		tradeID := uuid.NewString()

		sink.OnTrade(core.TradeEvent{
			OrderID:     head.ID,
			Price:       level.Price,
			Qty:         tradeQty,
			Side:        head.Side,
			IsAggressor: false,
			TradeID:     tradeID,
		})
		sink.OnTrade(core.TradeEvent{
			OrderID:     incomingID,
			Price:       level.Price,
			Qty:         tradeQty,
			Side:        incomingSide,
			IsAggressor: true,
			TradeID:     tradeID,
		})

		head.Qty -= tradeQty
		qty -= tradeQty

		if head.Qty == 0 {
			next := head.Next()
			level.RemoveOrder(head)
			b.orderPool.Release(head)
			head = next
		}
	}

	if level.IsEmpty() {
		opposite.removeLevel(level)
	}

	return qty
}

// BestBid returns the highest resting buy price, or 0 if there are no buy
// orders.
func (b *Book) BestBid() int64 {
	return b.Bids.bestPrice(false)
}

// BestAsk returns the lowest resting sell price, or 0 if there are no sell
// orders.
func (b *Book) BestAsk() int64 {
	return b.Asks.bestPrice(true)
}
