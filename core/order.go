package core

// Order is a resting order, owned jointly by its PriceLevel (via the
// prev/next list linkage) and by the order pool (as backing storage).
// prev/next are intrusive — they live on the Order itself, not in a
// separate list node, so walking or unlinking a level's FIFO never
// allocates.
type Order struct {
	ID    int64
	Price int64
	Qty   int64
	Side  Side

	prev, next *Order

	poolIndex int32
}

// Reset clears every field, including linkage, so a released Order carries
// no stale state into its next loan.
func (o *Order) Reset() {
	o.ID = 0
	o.Price = 0
	o.Qty = 0
	o.Side = 0
	o.prev = nil
	o.next = nil
	// poolIndex is intentionally left untouched by Reset: it is arena
	// identity, not order state, and is overwritten by Pool.Borrow.
}

func (o *Order) PoolIndex() int32     { return o.poolIndex }
func (o *Order) SetPoolIndex(i int32) { o.poolIndex = i }

// Next returns the next-newer-arrival order at the same price level (the
// order immediately behind o toward tail), or nil if o is currently the
// tail. Used by callers that need to continue walking a FIFO after
// unlinking o.
func (o *Order) Next() *Order {
	return o.next
}
