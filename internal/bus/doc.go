// Package bus implements an in-process, topic-based notification bus.
//
// Components register interest in a Topic with Notifier.Subscribe, a
// publisher later delivers a Payload to every listener currently registered
// for that topic with Notifier.Publish, and any registration may be revoked
// individually through the Subscription it produced.
//
// Files by concern:
//
//   - types.go: Topic, Payload, Listener and the reserved topic names.
//   - registry.go: Registry, the sole owner of topic -> slot sequences.
//   - subscription.go: Subscription handles and revocation.
//   - notifier.go: Notifier façade, options and dispatch.
//   - metrics.go: Prometheus collectors for publishes, deliveries and slots.
//
// Dispatch is synchronous and uses a snapshot of the topic's slots taken at
// the start of each Publish call. Listeners run without the registry lock
// held, so they may Subscribe, Remove or Publish reentrantly. A listener
// that panics is not recovered; the panic reaches the caller of Publish.
package bus
