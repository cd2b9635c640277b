// Command engine wires the decode / match / encode pipeline end to end: an
// I/O goroutine decodes inbound order frames from stdin into the command
// ring, the matching goroutine drains the ring and runs them through a
// single Engine, and an egress sink encodes execution reports to stdout.
package main

import (
	"bufio"
	"io"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	tomb "gopkg.in/tomb.v2"

	"matchcore/core"
	"matchcore/engine"
	"matchcore/ring"
	"matchcore/wire"
)

// reportSink encodes every event straight onto an output stream as a wire
// execution report. Its own buffering/flushing is its concern, not the
// engine's — AcceptOrder calls it synchronously from the matching
// goroutine.
type reportSink struct {
	w   *bufio.Writer
	buf [wire.OutboundFrameSize]byte
}

func newReportSink(w io.Writer) *reportSink {
	return &reportSink{w: bufio.NewWriter(w)}
}

func (s *reportSink) OnAccepted(e core.AcceptedEvent) {
	wire.EncodeAccepted(s.buf[:], 0, e.OrderID, e.Qty, e.Price, e.Side)
	s.write()
}

func (s *reportSink) OnTrade(e core.TradeEvent) {
	wire.EncodeFilled(s.buf[:], 0, e.OrderID, e.Qty, e.Price, e.Side)
	s.write()
	log.Debug().
		Str("trade_id", e.TradeID).
		Int64("order_id", e.OrderID).
		Bool("aggressor", e.IsAggressor).
		Int64("qty", e.Qty).
		Int64("price", e.Price).
		Msg("trade")
}

func (s *reportSink) OnRejected(e core.RejectedEvent) {
	log.Warn().Int64("order_id", e.OrderID).Str("reason", e.Reason).Msg("order rejected")
}

func (s *reportSink) write() {
	if _, err := s.w.Write(s.buf[:]); err != nil {
		log.Error().Err(err).Msg("failed to write execution report")
	}
}

// readFrames decodes InboundFrameSize chunks from r and publishes a
// Command per frame onto producer, stopping cleanly at EOF or when t is
// dying.
func readFrames(t *tomb.Tomb, r io.Reader, producer *ring.Producer) error {
	frame := make([]byte, wire.InboundFrameSize)
	var view wire.OrderFrameView

	for {
		select {
		case <-t.Dying():
			return nil
		default:
		}

		if _, err := io.ReadFull(r, frame); err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				t.Kill(nil)
				return nil
			}
			return err
		}

		view.Reset(frame, 0)
		cmd, seq := producer.Claim()
		view.DecodeInto(cmd)
		producer.Publish(seq)
	}
}

// runMatching is the matching goroutine's steady-state loop: it is locked
// to its OS thread and never blocks on I/O, only busy-spins on the ring, so
// the engine's matching thread stays free of scheduler wake-up latency.
// Once t is dying it drains every command already published, then returns.
func runMatching(t *tomb.Tomb, eng *engine.Engine, consumer *ring.Consumer) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	for {
		cmd, ok := consumer.Poll()
		if !ok {
			select {
			case <-t.Dying():
				for cmd, ok = consumer.Poll(); ok; cmd, ok = consumer.Poll() {
					eng.AcceptOrder(cmd.ID, cmd.Price, cmd.Qty, cmd.Side)
					consumer.Advance()
				}
				return nil
			default:
			}
			runtime.Gosched()
			continue
		}
		eng.AcceptOrder(cmd.ID, cmd.Price, cmd.Qty, cmd.Side)
		consumer.Advance()
	}
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg := core.DefaultConfig()
	sink := newReportSink(os.Stdout)
	eng := engine.New(cfg, sink)

	buf := ring.NewBuffer(cfg.RingCapacity)
	producer := buf.NewProducer()
	consumer := buf.NewConsumer()

	var t tomb.Tomb
	t.Go(func() error {
		return readFrames(&t, os.Stdin, producer)
	})
	t.Go(func() error {
		return runMatching(&t, eng, consumer)
	})

	if err := t.Wait(); err != nil {
		log.Fatal().Err(err).Msg("engine terminated with error")
	}
	sink.w.Flush()
	log.Info().Msg("engine shut down cleanly")
}
