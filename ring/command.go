// Package ring implements an SPSC command ring buffer: a power-of-two
// array of pre-allocated Command slots, with cache-line-padded producer
// and consumer cursors published via atomic store/load rather than locks
// or condition variables.
package ring

import "matchcore/core"

// Command is one decoded order command — the ring slot payload. It is
// copied by value into and out of slots; nothing about it requires heap
// allocation.
type Command struct {
	ID    int64
	Price int64
	Qty   int64
	Side  core.Side
}
