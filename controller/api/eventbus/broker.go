package eventbus

import (
	"sync"

	pb "github.com/anubhaparashar/mcp2/controller/gen/mcp"
	"github.com/anubhaparashar/mcp2/pkg/tokens"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsPublished = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventbus_events_published_total",
		Help: "Events accepted for delivery.",
	})
	eventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "eventbus_events_dropped_total",
		Help: "Event deliveries dropped because a subscriber's queue was full.",
	})
)

// subscriptionCapacity bounds each subscriber's event queue. A subscriber
// that falls this far behind starts losing events rather than stalling
// publishers; delivery is best-effort.
const subscriptionCapacity = 64

// Broker owns the topic registry: the set of live subscriptions and the
// per-topic sequence counters. Counters are created lazily on first publish
// and strictly increase for the broker's lifetime.
type Broker struct {
	mu            sync.Mutex
	subscriptions map[*Subscription]struct{}
	sequences     map[string]uint64
}

// Subscription is the receive end of a topic filter registration.
type Subscription struct {
	topicFilter string
	events      chan *pb.EventEnvelope
}

// Events is the channel envelopes are delivered on.
func (s *Subscription) Events() <-chan *pb.EventEnvelope {
	return s.events
}

// NewBroker creates a Broker with no subscriptions.
func NewBroker() *Broker {
	return &Broker{
		subscriptions: make(map[*Subscription]struct{}),
		sequences:     make(map[string]uint64),
	}
}

// Subscribe registers a sink under the topic filter.
func (b *Broker) Subscribe(topicFilter string) *Subscription {
	sub := &Subscription{
		topicFilter: topicFilter,
		events:      make(chan *pb.EventEnvelope, subscriptionCapacity),
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscriptions[sub] = struct{}{}
	return sub
}

// Unsubscribe removes the sink. Events already queued remain readable.
func (b *Broker) Unsubscribe(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.subscriptions, sub)
}

// Publish assigns the topic's next sequence number and delivers the envelope
// to every subscription whose filter matches. It returns the sequence number
// and how many subscribers were reached.
//
// Enqueueing happens under the broker lock so that two publishes to the same
// topic reach every subscriber in sequence order; the per-subscription sends
// are non-blocking, so the lock is never held across a slow consumer. A full
// queue drops the envelope for that subscriber only.
func (b *Broker) Publish(topic string, payload []byte) (uint64, int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.sequences[topic]++
	envelope := &pb.EventEnvelope{
		Topic:      topic,
		Payload:    payload,
		SequenceId: b.sequences[topic],
	}
	eventsPublished.Inc()

	delivered := 0
	for sub := range b.subscriptions {
		if !tokens.Matches(sub.topicFilter, topic) {
			continue
		}
		select {
		case sub.events <- envelope:
			delivered++
		default:
			eventsDropped.Inc()
		}
	}
	return envelope.SequenceId, delivered
}

// SubscriptionCount returns the number of live subscriptions.
func (b *Broker) SubscriptionCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subscriptions)
}
