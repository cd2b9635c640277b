package core

// AcceptedEvent is emitted exactly once per input order that rests with a
// nonzero residual. An order that fills completely on arrival never
// produces one — there is a single ACCEPTED event, never a separate
// full-fill acknowledgment.
type AcceptedEvent struct {
	OrderID int64
	Price   int64
	Qty     int64
	Side    Side
}

// TradeEvent is emitted twice per fill slice: once for the passive
// (resting) order and once for the aggressor, always at the passive
// level's price, passive first. IsAggressor is not part of the wire frame,
// but is carried here so in-process consumers of Sink don't have to infer
// the passive/aggressor role from emission order alone. TradeID correlates
// the passive/aggressor pair for logging; it never reaches the wire.
type TradeEvent struct {
	OrderID     int64
	Price       int64
	Qty         int64
	Side        Side
	IsAggressor bool
	TradeID     string
}

// RejectedEvent rounds out the Sink capability set, even though the engine
// itself never produces one: validation happens upstream of the core. A
// Sink implementation is free to treat OnRejected as unreachable.
type RejectedEvent struct {
	OrderID int64
	Reason  string
}

// Sink is the engine's only output. It is invoked synchronously, on the
// matching thread, in the exact order the engine produces events: passive
// trade, aggressor trade, for each fill slice, then the residual's
// AcceptedEvent if one rests. A Sink implementation's own thread-safety
// (e.g. handing events to an egress ring) is its own concern, not the
// engine's.
type Sink interface {
	OnTrade(TradeEvent)
	OnAccepted(AcceptedEvent)
	OnRejected(RejectedEvent)
}
