package wire

import (
	"encoding/binary"

	"matchcore/core"
)

// EncodeAccepted writes an ACCEPTED execution report into buf[offset:
// offset+OutboundFrameSize]. remainingQty is the quantity that rested on
// the book after matching (zero fills are never reported here — the
// gateway only calls this when AcceptedEvent fires).
func EncodeAccepted(buf []byte, offset int, orderID, remainingQty, price int64, side core.Side) {
	encodeReport(buf, offset, orderID, remainingQty, price, StatusAccepted, side)
}

// EncodeFilled writes a FILLED execution report into buf[offset:
// offset+OutboundFrameSize], one per TradeEvent delivered to the gateway's
// sink.
func EncodeFilled(buf []byte, offset int, orderID, filledQty, fillPrice int64, side core.Side) {
	encodeReport(buf, offset, orderID, filledQty, fillPrice, StatusFilled, side)
}

func encodeReport(buf []byte, offset int, orderID, qty, price int64, status Status, side core.Side) {
	binary.LittleEndian.PutUint64(buf[offset:], uint64(orderID))
	binary.LittleEndian.PutUint64(buf[offset+8:], uint64(qty))
	binary.LittleEndian.PutUint64(buf[offset+16:], uint64(price))
	buf[offset+24] = byte(status)
	buf[offset+25] = byte(side)
}
