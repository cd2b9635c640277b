package wire

import (
	"encoding/binary"

	"matchcore/core"
	"matchcore/ring"
)

// OrderFrameView is a reusable, zero-copy view over an inbound order
// command frame. It is bound to a (buffer, offset) pair
// and re-bound across frames with Reset — no per-frame allocation, no
// copying, until DecodeInto performs the one permitted copy into a ring
// slot.
type OrderFrameView struct {
	buf    []byte
	offset int
}

// Reset rebinds the view to a new (buffer, offset) pair. buf must have at
// least offset+InboundFrameSize bytes.
func (v *OrderFrameView) Reset(buf []byte, offset int) {
	v.buf = buf
	v.offset = offset
}

// OrderID reads the 8-byte signed order_id field at offset 0.
func (v *OrderFrameView) OrderID() int64 {
	return int64(binary.LittleEndian.Uint64(v.buf[v.offset:]))
}

// Price reads the 8-byte signed fixed-point price field at offset 8.
func (v *OrderFrameView) Price() int64 {
	return int64(binary.LittleEndian.Uint64(v.buf[v.offset+8:]))
}

// Quantity reads the 8-byte signed quantity field at offset 16.
func (v *OrderFrameView) Quantity() int64 {
	return int64(binary.LittleEndian.Uint64(v.buf[v.offset+16:]))
}

// Side reads the 1-byte side field at offset 24 (0 = BUY, 1 = SELL).
func (v *OrderFrameView) Side() core.Side {
	return core.Side(v.buf[v.offset+24])
}

// DecodeInto copies the view's four scalar fields into cmd. This is the
// single permitted copy in the decode path: everything upstream of it is
// a read through the view, nothing downstream of it touches buf again.
func (v *OrderFrameView) DecodeInto(cmd *ring.Command) {
	cmd.ID = v.OrderID()
	cmd.Price = v.Price()
	cmd.Qty = v.Quantity()
	cmd.Side = v.Side()
}
