// Command warmup drives a throwaway Engine through cfg.WarmupIterations
// synthetic orders and then logs the order pool state. It runs in its own
// process against an isolated Engine; it does not start or hand off to a
// live engine, and cmd/engine runs no warm-up pass of its own.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"matchcore/core"
	"matchcore/engine"
)

type discardSink struct{}

func (discardSink) OnTrade(core.TradeEvent)       {}
func (discardSink) OnAccepted(core.AcceptedEvent) {}
func (discardSink) OnRejected(core.RejectedEvent) {}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg := core.DefaultConfig()
	eng := engine.New(cfg, discardSink{})

	log.Info().Int("iterations", cfg.WarmupIterations).Msg("starting warm-up")

	for i := 0; i < cfg.WarmupIterations; i++ {
		id := int64(i + 1)
		side := core.SideBuy
		if i%2 != 0 {
			side = core.SideSell
		}
		price := 50_000 + int64(i%200)
		eng.AcceptOrder(id, price, 1, side)
	}

	avail, capacity := eng.OrderPoolStats()
	log.Info().Int("available", avail).Int("capacity", capacity).Msg("warm-up complete, order pool state")
}
