package bus

import "weak"

// Subscription is the handle returned by Notifier.Subscribe. Its only
// operation is Remove.
//
// A Subscription refers to its registry weakly: it never keeps a Notifier
// alive, and once the Notifier is closed or collected Remove does nothing.
type Subscription struct {
	topic Topic
	index uint64
	reg   weak.Pointer[Registry]
}

// inert is returned when there is nothing to revoke.
func inert(topic Topic) *Subscription { return &Subscription{topic: topic} }

// Remove revokes the registration that produced s. Calling it again, or
// after the Notifier was closed, is a no-op.
func (s *Subscription) Remove() {
	if s == nil || s.index == 0 {
		return
	}
	r := s.reg.Value()
	if r == nil {
		return
	}
	r.remove(s.topic, s.index)
}
