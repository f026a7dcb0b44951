package sink

import (
	"maps"
	"sync"

	"notifyd/internal/bus"
)

// Delivery is one notification seen by a Recorder.
type Delivery struct {
	Topic   bus.Topic
	Payload bus.Payload
}

// Recorder stores notifications in memory. Useful in tests and for
// wiring checks; it never prunes.
type Recorder struct {
	mu         sync.Mutex
	deliveries []Delivery
}

func NewRecorder() *Recorder { return &Recorder{} }

// Listener returns a listener that records every payload under topic.
// The payload is cloned so later mutation by the publisher is not seen.
func (r *Recorder) Listener(topic bus.Topic) bus.Listener {
	return func(p bus.Payload) {
		r.mu.Lock()
		r.deliveries = append(r.deliveries, Delivery{Topic: topic, Payload: maps.Clone(p)})
		r.mu.Unlock()
	}
}

func (r *Recorder) Deliveries() []Delivery {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Delivery, len(r.deliveries))
	copy(out, r.deliveries)
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.deliveries)
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	r.deliveries = nil
	r.mu.Unlock()
}
