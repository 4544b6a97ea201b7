package contexttool

import (
	"sync"

	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var telemetryFramesDropped = promauto.NewCounter(prometheus.CounterOpts{
	Name: "contexttool_telemetry_frames_dropped_total",
	Help: "Telemetry frames dropped because a subscriber's queue was full.",
})

// defaultSinkCapacity bounds each subscriber's frame queue. A subscriber that
// falls this far behind starts losing frames rather than stalling the
// publisher.
const defaultSinkCapacity = 64

// Publisher fans telemetry frames out to the subscribers of each stream id.
// Publishing never blocks: each subscriber owns a bounded queue and frames
// are dropped per-subscriber on overflow.
type Publisher struct {
	mu      sync.Mutex
	streams map[string]map[*telemetrySink]struct{}
}

type telemetrySink struct {
	frames chan *pb.TelemetryFrame
}

// NewPublisher creates a Publisher with no subscribers.
func NewPublisher() *Publisher {
	return &Publisher{streams: make(map[string]map[*telemetrySink]struct{})}
}

// Publish delivers the frame to every subscriber of streamID, in publication
// order per subscriber. Subscribers are invoked from a snapshot so sink
// writes happen outside the lock.
func (p *Publisher) Publish(streamID string, frame *pb.TelemetryFrame) {
	p.mu.Lock()
	sinks := make([]*telemetrySink, 0, len(p.streams[streamID]))
	for sink := range p.streams[streamID] {
		sinks = append(sinks, sink)
	}
	p.mu.Unlock()

	for _, sink := range sinks {
		select {
		case sink.frames <- frame:
		default:
			telemetryFramesDropped.Inc()
		}
	}
}

func (p *Publisher) subscribe(streamID string) *telemetrySink {
	sink := &telemetrySink{frames: make(chan *pb.TelemetryFrame, defaultSinkCapacity)}
	p.mu.Lock()
	defer p.mu.Unlock()
	subscribers, ok := p.streams[streamID]
	if !ok {
		subscribers = make(map[*telemetrySink]struct{})
		p.streams[streamID] = subscribers
	}
	subscribers[sink] = struct{}{}
	return sink
}

func (p *Publisher) unsubscribe(streamID string, sink *telemetrySink) {
	p.mu.Lock()
	defer p.mu.Unlock()
	subscribers, ok := p.streams[streamID]
	if !ok {
		return
	}
	delete(subscribers, sink)
	if len(subscribers) == 0 {
		delete(p.streams, streamID)
	}
}

// SubscriberCount returns the number of active subscribers for a stream id.
func (p *Publisher) SubscriberCount(streamID string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.streams[streamID])
}
