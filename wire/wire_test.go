package wire

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"matchcore/core"
	"matchcore/ring"
)

func TestOrderFrameViewDecodeAtVariousOffsets(t *testing.T) {
	offsets := []int{0, 7, InboundFrameSize, 100}

	for _, offset := range offsets {
		buf := make([]byte, offset+InboundFrameSize+32)
		encodeInboundFrame(buf, offset, 1234, 5678, 42, core.SideSell)

		var view OrderFrameView
		view.Reset(buf, offset)

		assert.Equal(t, int64(1234), view.OrderID(), "offset %d", offset)
		assert.Equal(t, int64(5678), view.Price(), "offset %d", offset)
		assert.Equal(t, int64(42), view.Quantity(), "offset %d", offset)
		assert.Equal(t, core.SideSell, view.Side(), "offset %d", offset)
	}
}

func TestDecodeIntoPopulatesCommand(t *testing.T) {
	buf := make([]byte, InboundFrameSize)
	encodeInboundFrame(buf, 0, 1, 2, 3, core.SideBuy)

	var view OrderFrameView
	view.Reset(buf, 0)

	var cmd ring.Command
	view.DecodeInto(&cmd)

	assert.Equal(t, int64(1), cmd.ID)
	assert.Equal(t, int64(2), cmd.Price)
	assert.Equal(t, int64(3), cmd.Qty)
	assert.Equal(t, core.SideBuy, cmd.Side)
}

func TestEncodeAcceptedRoundTrips(t *testing.T) {
	offsets := []int{0, 11, OutboundFrameSize}
	for _, offset := range offsets {
		buf := make([]byte, offset+OutboundFrameSize+16)
		EncodeAccepted(buf, offset, 99, 7, 101, core.SideBuy)

		orderID, qty, price, status, side := decodeOutboundFrame(buf, offset)
		assert.Equal(t, int64(99), orderID, "offset %d", offset)
		assert.Equal(t, int64(7), qty, "offset %d", offset)
		assert.Equal(t, int64(101), price, "offset %d", offset)
		assert.Equal(t, StatusAccepted, status, "offset %d", offset)
		assert.Equal(t, core.SideBuy, side, "offset %d", offset)
	}
}

func TestEncodeFilledRoundTrips(t *testing.T) {
	buf := make([]byte, OutboundFrameSize)
	EncodeFilled(buf, 0, 55, 3, 200, core.SideSell)

	orderID, qty, price, status, side := decodeOutboundFrame(buf, 0)
	assert.Equal(t, int64(55), orderID)
	assert.Equal(t, int64(3), qty)
	assert.Equal(t, int64(200), price)
	assert.Equal(t, StatusFilled, status)
	assert.Equal(t, core.SideSell, side)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "ACCEPTED", StatusAccepted.String())
	assert.Equal(t, "FILLED", StatusFilled.String())
}

// encodeInboundFrame is a minimal, independent encoder used only to set up
// test fixtures — it deliberately does not reuse the decoder's own byte
// offsets so a bug in OrderFrameView can't cancel itself out.
func encodeInboundFrame(buf []byte, offset int, orderID, price, qty int64, side core.Side) {
	putLE(buf, offset, uint64(orderID))
	putLE(buf, offset+8, uint64(price))
	putLE(buf, offset+16, uint64(qty))
	buf[offset+24] = byte(side)
}

func decodeOutboundFrame(buf []byte, offset int) (orderID, qty, price int64, status Status, side core.Side) {
	orderID = int64(getLE(buf, offset))
	qty = int64(getLE(buf, offset+8))
	price = int64(getLE(buf, offset+16))
	status = Status(buf[offset+24])
	side = core.Side(buf[offset+25])
	return
}

func putLE(buf []byte, offset int, v uint64) {
	for i := 0; i < 8; i++ {
		buf[offset+i] = byte(v >> (8 * i))
	}
}

func getLE(buf []byte, offset int) uint64 {
	var v uint64
	for i := 0; i < 8; i++ {
		v |= uint64(buf[offset+i]) << (8 * i)
	}
	return v
}
