package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceLevelFIFOOrder(t *testing.T) {
	level := &PriceLevel{Price: 100}
	a := &Order{ID: 1, Qty: 5}
	b := &Order{ID: 2, Qty: 7}
	c := &Order{ID: 3, Qty: 3}

	level.AddOrder(a)
	level.AddOrder(b)
	level.AddOrder(c)

	require.Equal(t, int64(15), level.TotalQty)

	assert.Equal(t, a, level.Front())
	level.RemoveOrder(a)
	assert.Equal(t, b, level.Front())
	assert.Equal(t, int64(10), level.TotalQty)

	level.RemoveOrder(b)
	assert.Equal(t, c, level.Front())

	level.RemoveOrder(c)
	assert.True(t, level.IsEmpty())
	assert.Equal(t, int64(0), level.TotalQty)
}

func TestPriceLevelRemoveMiddleOrder(t *testing.T) {
	level := &PriceLevel{Price: 100}
	a := &Order{ID: 1, Qty: 1}
	b := &Order{ID: 2, Qty: 1}
	c := &Order{ID: 3, Qty: 1}
	level.AddOrder(a)
	level.AddOrder(b)
	level.AddOrder(c)

	level.RemoveOrder(b)

	assert.Equal(t, a, level.Front())
	assert.Equal(t, c, a.Next())
	assert.Nil(t, c.Next())
}

func TestOrderReset(t *testing.T) {
	o := &Order{ID: 1, Price: 100, Qty: 10, Side: SideBuy}
	o.SetPoolIndex(5)
	o.Reset()

	assert.Equal(t, int64(0), o.ID)
	assert.Equal(t, int64(0), o.Price)
	assert.Equal(t, int64(0), o.Qty)
	assert.Nil(t, o.Next())
	// poolIndex survives Reset: it is arena identity, not order state.
	assert.Equal(t, int32(5), o.PoolIndex())
}

func TestPriceLevelReset(t *testing.T) {
	level := &PriceLevel{}
	o := &Order{ID: 1, Qty: 1}
	level.AddOrder(o)
	level.SetPoolIndex(3)

	level.Reset()

	assert.Equal(t, int64(0), level.Price)
	assert.Equal(t, int64(0), level.TotalQty)
	assert.True(t, level.IsEmpty())
	assert.Nil(t, level.Front())
}
