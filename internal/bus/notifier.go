package bus

import (
	"runtime"
	"weak"

	"github.com/rs/zerolog"
)

// Option configures a Notifier.
type Option func(*options)

type options struct {
	log zerolog.Logger
}

// WithLogger installs a logger for subscribe/remove/close debug events.
// The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.log = l }
}

// Notifier is the public entry point of the bus. It owns exactly one
// Registry for its whole lifetime. The zero value is not usable; call New.
type Notifier struct {
	reg *Registry
}

// New returns a Notifier with an empty registry.
func New(opts ...Option) *Notifier {
	o := options{log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}
	n := &Notifier{reg: newRegistry(o.log.With().Str("component", "bus").Logger())}
	// A Notifier dropped without Close still releases its slots from the gauge.
	runtime.AddCleanup(n, func(r *Registry) { r.destroy() }, n.reg)
	return n
}

// Subscribe registers listener under topic and returns the handle that
// revokes it. It always succeeds; on a closed Notifier, or for a nil
// listener, the returned handle is already inert.
func (n *Notifier) Subscribe(topic Topic, listener Listener) *Subscription {
	if listener == nil {
		return inert(topic)
	}
	idx, ok := n.reg.add(topic, listener)
	if !ok {
		return inert(topic)
	}
	return &Subscription{topic: topic, index: idx, reg: weak.Make(n.reg)}
}

// Publish delivers payload to every listener registered for topic, in
// registration order, and returns once all of them have run. Publishing to
// a topic without listeners does nothing.
func (n *Notifier) Publish(topic Topic, payload Payload) {
	n.PublishCount(topic, payload)
}

// PublishCount is Publish, reporting how many listeners were invoked.
func (n *Notifier) PublishCount(topic Topic, payload Payload) int {
	count, _ := n.TryPublish(topic, payload)
	return count
}

// TryPublish is PublishCount that also reports whether the Notifier was
// still open when the listener snapshot was taken. ok is false after Close.
func (n *Notifier) TryPublish(topic Topic, payload Payload) (count int, ok bool) {
	listeners, ok := n.reg.snapshot(topic)
	if len(listeners) == 0 {
		// Topics without listeners share one series; remote callers choose topic names.
		publishedTotal.WithLabelValues(unsubscribedLabel).Inc()
		return 0, ok
	}
	publishedTotal.WithLabelValues(string(topic)).Inc()
	deliveries := deliveriesTotal.WithLabelValues(string(topic))
	for _, l := range listeners {
		l(payload)
		deliveries.Inc()
	}
	return len(listeners), ok
}

// Len returns the number of live listeners on topic.
func (n *Notifier) Len(topic Topic) int { return n.reg.count(topic) }

// Topics lists every topic with at least one live listener, sorted by name.
func (n *Notifier) Topics() []TopicInfo { return n.reg.infos() }

// Close destroys the registry. Outstanding handles become inert, further
// Subscribe calls return inert handles and Publish delivers nothing.
// Close is idempotent.
func (n *Notifier) Close() {
	n.reg.destroy()
}

// Closed reports whether Close has been called.
func (n *Notifier) Closed() bool { return n.reg.isClosed() }
