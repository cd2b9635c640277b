// Command benchmark drives a single Engine instance with a synthetic order
// stream and reports throughput and book depth once the run completes.
package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"matchcore/core"
	"matchcore/engine"
)

type countingSink struct {
	trades   int64
	accepted int64
}

func (s *countingSink) OnTrade(core.TradeEvent)       { s.trades++ }
func (s *countingSink) OnAccepted(core.AcceptedEvent) { s.accepted++ }
func (s *countingSink) OnRejected(core.RejectedEvent) {}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	const runOrders = 2_000_000

	cfg := core.DefaultConfig()
	sink := &countingSink{}
	eng := engine.New(cfg, sink)

	log.Info().Int("orders", runOrders).Msg("starting benchmark run")

	start := time.Now()
	for i := int64(0); i < runOrders; i++ {
		side := core.SideBuy
		if i%2 != 0 {
			side = core.SideSell
		}
		price := 50_000 + i%200
		eng.AcceptOrder(i, price, 1, side)
	}
	elapsed := time.Since(start)

	ordersPerSec := float64(runOrders) / elapsed.Seconds()
	tradesPerSec := float64(sink.trades) / elapsed.Seconds()

	log.Info().
		Dur("elapsed", elapsed).
		Int64("orders", runOrders).
		Int64("trades", sink.trades).
		Int64("accepted", sink.accepted).
		Float64("orders_per_sec", ordersPerSec).
		Float64("trades_per_sec", tradesPerSec).
		Msg("benchmark complete")

	book := eng.Book()
	log.Info().
		Int64("best_bid", book.BestBid()).
		Int64("best_ask", book.BestAsk()).
		Msg("final book state")

	avail, capacity := eng.OrderPoolStats()
	log.Info().Int("available", avail).Int("capacity", capacity).Msg("order pool headroom")
}
