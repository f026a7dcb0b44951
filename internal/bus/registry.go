package bus

import (
	"cmp"
	"slices"
	"sync"

	"github.com/rs/zerolog"
)

// slot is one registration within a topic. index comes from a
// registry-wide counter and is never reused.
type slot struct {
	index    uint64
	listener Listener
}

// Registry maps topics to their ordered slot sequences. Slots within a
// topic are kept in ascending index order, which is also delivery order.
type Registry struct {
	mu     sync.Mutex
	topics map[Topic][]slot
	next   uint64
	live   int
	closed bool
	log    zerolog.Logger
}

func newRegistry(log zerolog.Logger) *Registry {
	return &Registry{
		topics: make(map[Topic][]slot),
		log:    log,
	}
}

// add appends listener to topic and returns its slot index.
// ok is false when the registry is closed.
func (r *Registry) add(topic Topic, listener Listener) (index uint64, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return 0, false
	}
	r.next++
	index = r.next
	r.topics[topic] = append(r.topics[topic], slot{index: index, listener: listener})
	r.live++
	subscriptionsGauge.Inc()
	r.log.Debug().Str("topic", string(topic)).Uint64("slot", index).Msg("subscribe")
	return index, true
}

// remove clears the slot (topic, index). Unknown slots are ignored.
func (r *Registry) remove(topic Topic, index uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	slots := r.topics[topic]
	i, found := slices.BinarySearchFunc(slots, index, func(s slot, idx uint64) int { return cmp.Compare(s.index, idx) })
	if !found {
		return false
	}
	// Snapshots are copies, so deleting in place cannot disturb a dispatch.
	slots = slices.Delete(slots, i, i+1)
	if len(slots) == 0 {
		delete(r.topics, topic)
	} else {
		r.topics[topic] = slots
	}
	r.live--
	subscriptionsGauge.Dec()
	r.log.Debug().Str("topic", string(topic)).Uint64("slot", index).Msg("remove")
	return true
}

// snapshot copies the listeners registered for topic at this instant.
// ok is false when the registry is closed.
func (r *Registry) snapshot(topic Topic) (listeners []Listener, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return nil, false
	}
	slots := r.topics[topic]
	if len(slots) == 0 {
		return nil, true
	}
	out := make([]Listener, len(slots))
	for i, s := range slots {
		out[i] = s.listener
	}
	return out, true
}

func (r *Registry) count(topic Topic) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.topics[topic])
}

// infos lists topics with live listeners, sorted by name.
func (r *Registry) infos() []TopicInfo {
	r.mu.Lock()
	out := make([]TopicInfo, 0, len(r.topics))
	for t, slots := range r.topics {
		out = append(out, TopicInfo{Topic: t, Listeners: len(slots)})
	}
	r.mu.Unlock()
	slices.SortFunc(out, func(a, b TopicInfo) int { return cmp.Compare(a.Topic, b.Topic) })
	return out
}

// destroy drops every slot and refuses further mutation.
func (r *Registry) destroy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return false
	}
	r.closed = true
	subscriptionsGauge.Sub(float64(r.live))
	r.log.Debug().Int("topics", len(r.topics)).Int("slots", r.live).Msg("close")
	r.topics = nil
	r.live = 0
	return true
}

func (r *Registry) isClosed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
