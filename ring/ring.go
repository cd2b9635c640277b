package ring

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// paddedCursor holds one cursor on its own cache line so the producer's
// writes to its cursor never false-share with the consumer's reads of the
// other, and vice versa.
type paddedCursor struct {
	value atomic.Int64
	_     [56]byte // bring the struct up to a 64-byte line alongside the 8-byte atomic
}

// Buffer is the power-of-two array of pre-allocated Command slots. It is
// not used directly for reading/writing — Producer and Consumer are the
// single-writer/single-reader handles bound to it.
type Buffer struct {
	mask  int64
	slots []Command

	writeCursor paddedCursor
	readCursor  paddedCursor
}

// NewBuffer pre-allocates capacity slots. capacity must be a power of
// two.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 || capacity&(capacity-1) != 0 {
		panic(fmt.Sprintf("ring: capacity must be a power of two, got %d", capacity))
	}
	return &Buffer{
		mask:  int64(capacity - 1),
		slots: make([]Command, capacity),
	}
}

// Capacity returns the buffer's fixed slot count.
func (b *Buffer) Capacity() int {
	return int(b.mask + 1)
}

// NewProducer returns the single producer handle. Only one may be in use
// at a time per Buffer — this is a single-producer, single-consumer
// buffer.
func (b *Buffer) NewProducer() *Producer {
	return &Producer{buf: b}
}

// NewConsumer returns the single consumer handle.
func (b *Buffer) NewConsumer() *Consumer {
	return &Consumer{buf: b}
}

// Producer is the single-writer handle. Its local `next` sequence counter
// needs no synchronization of its own — only the producer ever advances
// it.
type Producer struct {
	buf  *Buffer
	next int64
}

// Claim reserves the next slot for exclusive producer access and returns
// it along with the sequence to pass to Publish. If the consumer has
// fallen a full lap behind, Claim busy-spins rather than overwriting an
// unconsumed slot — back pressure, never a drop.
func (p *Producer) Claim() (*Command, int64) {
	seq := p.next
	capacity := p.buf.mask + 1
	for seq-p.buf.readCursor.value.Load() >= capacity {
		runtime.Gosched()
	}
	p.next++
	return &p.buf.slots[seq&p.buf.mask], seq
}

// Publish makes the slot claimed at seq visible to the consumer via a
// release-store: every write the producer made into the slot
// happens-before the consumer's acquire-load observes the advanced
// cursor.
func (p *Producer) Publish(seq int64) {
	p.buf.writeCursor.value.Store(seq + 1)
}

// Consumer is the single-reader handle.
type Consumer struct {
	buf  *Buffer
	next int64
}

// Poll returns the next published slot without blocking, or (nil, false)
// if the producer hasn't published one yet.
func (c *Consumer) Poll() (*Command, bool) {
	if c.next >= c.buf.writeCursor.value.Load() {
		return nil, false
	}
	return &c.buf.slots[c.next&c.buf.mask], true
}

// Advance releases the slot most recently returned by Poll/Wait, publishing
// the new read cursor so a spinning Producer.Claim can make progress.
func (c *Consumer) Advance() {
	c.next++
	c.buf.readCursor.value.Store(c.next)
}

// Wait busy-spins until a slot is published. This is the matching
// thread's steady-state loop primitive: the matching thread never
// blocks — it spins while the ring buffer is empty, trading CPU for zero
// wake-up latency.
func (c *Consumer) Wait() *Command {
	for {
		if cmd, ok := c.Poll(); ok {
			return cmd
		}
		runtime.Gosched()
	}
}
