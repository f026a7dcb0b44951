package sink

import (
	"slices"

	"github.com/rs/zerolog"

	"notifyd/internal/bus"
)

// Subscriber is the part of the bus a sink needs.
type Subscriber interface {
	Subscribe(topic bus.Topic, listener bus.Listener) *bus.Subscription
}

// Log returns a listener writing each notification on topic to l.
// Notifications on the error topic are logged at error level, all others
// at info. Payload keys are emitted in sorted order.
func Log(l zerolog.Logger, topic bus.Topic) bus.Listener {
	return func(p bus.Payload) {
		ev := l.Info()
		if topic == bus.TopicErrorNotification {
			ev = l.Error()
		}
		fields := zerolog.Dict()
		keys := make([]string, 0, len(p))
		for k := range p {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			fields = fields.Str(k, p[k])
		}
		ev.Str("topic", string(topic)).Dict("payload", fields).Msg("notification")
	}
}

// AttachLogger subscribes a Log listener to each topic and returns the
// handles in the same order. Duplicate topics are subscribed once.
func AttachLogger(s Subscriber, l zerolog.Logger, topics ...bus.Topic) []*bus.Subscription {
	seen := make(map[bus.Topic]bool, len(topics))
	subs := make([]*bus.Subscription, 0, len(topics))
	for _, t := range topics {
		if seen[t] {
			continue
		}
		seen[t] = true
		subs = append(subs, s.Subscribe(t, Log(l, t)))
	}
	return subs
}
