package core

// color is the one-bit red-black tag, packed onto the level itself so the
// tree stays intrusive: no separate wrapper node ever exists.
type color uint8

const (
	red color = iota
	black
)

// PriceLevel is a FIFO bucket of orders at one price on one side, and
// simultaneously a node of its side's red-black tree. Both roles live on
// the same struct: head/tail/TotalQty are the FIFO, and
// left/right/parent/clr are the tree linkage. A PriceLevel is created the
// moment the first order arrives at a new price and destroyed the moment
// its FIFO empties.
type PriceLevel struct {
	Price    int64
	TotalQty int64

	head, tail *Order

	left, right, parent *PriceLevel
	clr                 color

	poolIndex int32
}

// Reset clears FIFO, tree linkage and accounting, so a released level
// carries no stale state into its next loan.
func (l *PriceLevel) Reset() {
	l.Price = 0
	l.TotalQty = 0
	l.head = nil
	l.tail = nil
	l.left = nil
	l.right = nil
	l.parent = nil
	l.clr = red
}

func (l *PriceLevel) PoolIndex() int32     { return l.poolIndex }
func (l *PriceLevel) SetPoolIndex(i int32) { l.poolIndex = i }

// IsEmpty reports whether the level's FIFO holds no orders.
func (l *PriceLevel) IsEmpty() bool {
	return l.head == nil
}

// AddOrder appends order at the tail of the level's FIFO: time priority
// means later arrivals queue behind earlier ones at the same price.
func (l *PriceLevel) AddOrder(o *Order) {
	o.prev = l.tail
	o.next = nil
	if l.tail != nil {
		l.tail.next = o
	} else {
		l.head = o
	}
	l.tail = o
	l.TotalQty += o.Qty
}

// RemoveOrder unlinks order from the FIFO in O(1) using its embedded
// prev/next. Precondition: order is in this level's list.
func (l *PriceLevel) RemoveOrder(o *Order) {
	if o.prev != nil {
		o.prev.next = o.next
	} else {
		l.head = o.next
	}
	if o.next != nil {
		o.next.prev = o.prev
	} else {
		l.tail = o.prev
	}
	o.prev = nil
	o.next = nil
	l.TotalQty -= o.Qty
}

// Front returns the oldest resting order (the next to fill), or nil if the
// level is empty.
func (l *PriceLevel) Front() *Order {
	return l.head
}
