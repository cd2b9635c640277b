// Command profile runs the same synthetic order stream as cmd/benchmark
// under pprof's CPU profiler, for inspecting matching-thread hot paths.
package main

import (
	"os"
	"runtime/pprof"
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

	cpuFile, err := os.Create("cpu.prof")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create cpu.prof")
	}
	defer cpuFile.Close()

	if err := pprof.StartCPUProfile(cpuFile); err != nil {
		log.Fatal().Err(err).Msg("failed to start CPU profile")
	}
	defer pprof.StopCPUProfile()

	const runOrders = 5_000_000

	cfg := core.DefaultConfig()
	sink := &countingSink{}
	eng := engine.New(cfg, sink)

	log.Info().Str("output", "cpu.prof").Int("orders", runOrders).Msg("profiling started")

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

	log.Info().
		Dur("elapsed", elapsed).
		Int64("trades", sink.trades).
		Msg("profiling run complete")
	log.Info().Msg("inspect with: go tool pprof -http=:8080 cpu.prof")
}
