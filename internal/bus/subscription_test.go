package bus

import (
	"runtime"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

// abandoned subscribes three listeners on a Notifier that is never closed
// and returns one handle, leaving the Notifier itself unreachable.
func abandoned() *Subscription {
	n := New()
	n.Subscribe("gc", func(Payload) {})
	n.Subscribe("gc", func(Payload) {})
	return n.Subscribe("gc", func(Payload) {})
}

func TestRemove_AfterNotifierCollected(t *testing.T) {
	before := testutil.ToFloat64(subscriptionsGauge)
	h := abandoned()
	if h.index == 0 {
		t.Fatalf("abandoned handle is inert")
	}

	deadline := time.Now().Add(5 * time.Second)
	for h.reg.Value() != nil {
		if time.Now().After(deadline) {
			t.Fatalf("registry still reachable after GC")
		}
		runtime.GC()
		time.Sleep(time.Millisecond)
	}

	h.Remove()
	h.Remove()

	// The registry is only collectable once its cleanup has dropped the slots.
	if got := testutil.ToFloat64(subscriptionsGauge); got > before {
		t.Fatalf("subscriptions=%v after collection, want <= %v", got, before)
	}
}

func TestTryPublish_ReportsClosed(t *testing.T) {
	n := New()
	var calls int
	n.Subscribe("x", func(Payload) { calls++ })

	if got, ok := n.TryPublish("x", nil); got != 1 || !ok {
		t.Fatalf("TryPublish open = (%d, %v), want (1, true)", got, ok)
	}
	if got, ok := n.TryPublish("nobody", nil); got != 0 || !ok {
		t.Fatalf("TryPublish no listeners = (%d, %v), want (0, true)", got, ok)
	}
	n.Close()
	if got, ok := n.TryPublish("x", nil); got != 0 || ok {
		t.Fatalf("TryPublish closed = (%d, %v), want (0, false)", got, ok)
	}
	if calls != 1 {
		t.Fatalf("calls=%d, want 1", calls)
	}
}

func TestClose_ReleasesSubscriptionsGauge(t *testing.T) {
	before := testutil.ToFloat64(subscriptionsGauge)
	n := New()
	n.Subscribe("g", func(Payload) {})
	n.Subscribe("g", func(Payload) {})
	if got := testutil.ToFloat64(subscriptionsGauge); got > before+2 {
		t.Fatalf("subscriptions=%v, want <= %v", got, before+2)
	}
	n.Close()
	n.Close()
	// Cleanups of other collected notifiers may only lower the gauge further.
	if got := testutil.ToFloat64(subscriptionsGauge); got > before {
		t.Fatalf("subscriptions=%v after Close, want <= %v", got, before)
	}
}
