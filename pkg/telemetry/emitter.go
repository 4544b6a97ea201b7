// Package telemetry emits structured per-RPC records to a pluggable sink
// without ever blocking the calling handler. Records are buffered on a
// bounded channel and drained by a single consumer; when the buffer is full
// the record is dropped and counted.
package telemetry

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	logging "github.com/sirupsen/logrus"
)

var (
	recordsEmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_records_emitted_total",
		Help: "Total telemetry records delivered to the sink.",
	})
	recordsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "telemetry_records_dropped_total",
		Help: "Total telemetry records dropped because the buffer was full.",
	})
)

// Record is a keyed telemetry entry. Every record carries at least method,
// client, latency_ms and status.
type Record map[string]interface{}

// NewRecord builds a Record for one RPC exit, stamped with a unique id.
func NewRecord(method, client string, latency time.Duration, status string) Record {
	return Record{
		"record_id":  uuid.New().String(),
		"method":     method,
		"client":     client,
		"latency_ms": latency.Milliseconds(),
		"status":     status,
	}
}

// Sink consumes emitted records. Consume runs on the emitter's consumer
// goroutine, never on an RPC handler.
type Sink interface {
	Consume(Record)
}

// LogSink writes records as structured log lines.
type LogSink struct {
	Log *logging.Entry
}

// Consume implements Sink.
func (s *LogSink) Consume(record Record) {
	s.Log.WithFields(logging.Fields(record)).Info("rpc telemetry")
}

// Emitter is the non-blocking front of a Sink.
type Emitter struct {
	records   chan Record
	done      chan struct{}
	closeOnce sync.Once
	wg        sync.WaitGroup
}

// NewEmitter starts an Emitter draining into sink with the given buffer
// capacity.
func NewEmitter(sink Sink, capacity int) *Emitter {
	if capacity <= 0 {
		capacity = 128
	}
	e := &Emitter{
		records: make(chan Record, capacity),
		done:    make(chan struct{}),
	}
	e.wg.Add(1)
	go e.consume(sink)
	return e
}

func (e *Emitter) consume(sink Sink) {
	defer e.wg.Done()
	for {
		select {
		case record := <-e.records:
			sink.Consume(record)
			recordsEmitted.Inc()
		case <-e.done:
			// drain what is already buffered, then stop
			for {
				select {
				case record := <-e.records:
					sink.Consume(record)
					recordsEmitted.Inc()
				default:
					return
				}
			}
		}
	}
}

// Log enqueues a record. It never blocks; if the buffer is full the record is
// dropped.
func (e *Emitter) Log(record Record) {
	select {
	case e.records <- record:
	default:
		recordsDropped.Inc()
	}
}

// Close stops the consumer after draining buffered records.
func (e *Emitter) Close() {
	e.closeOnce.Do(func() {
		close(e.done)
	})
	e.wg.Wait()
}
