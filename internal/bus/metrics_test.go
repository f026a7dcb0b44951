package bus

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

// TestMetrics_PublishAndDeliveryCounters verifies that publishes and listener
// invocations are exported per topic.
func TestMetrics_PublishAndDeliveryCounters(t *testing.T) {
	n := New()
	n.Subscribe("metrics.test", func(Payload) {})
	n.Subscribe("metrics.test", func(Payload) {})
	n.Publish("metrics.test", nil)

	rr := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("/metrics status=%d", rr.Code)
	}
	body := rr.Body.Bytes()
	for _, want := range []string{
		`notifyd_bus_published_total{topic="metrics.test"} 1`,
		`notifyd_bus_deliveries_total{topic="metrics.test"} 2`,
		`notifyd_bus_subscriptions`,
	} {
		if !bytes.Contains(body, []byte(want)) {
			preview := body
			if len(preview) > 400 {
				preview = preview[:400]
			}
			t.Fatalf("expected %q in metrics; got: %q", want, string(preview))
		}
	}
}

// TestMetrics_UnsubscribedTopicsShareOneSeries verifies that publishing to
// arbitrary topics nobody listens on does not grow the published_total
// label set.
func TestMetrics_UnsubscribedTopicsShareOneSeries(t *testing.T) {
	n := New()
	before := testutil.CollectAndCount(publishedTotal)
	baseline := testutil.ToFloat64(publishedTotal.WithLabelValues(unsubscribedLabel))
	for i := 0; i < 500; i++ {
		n.Publish(Topic(fmt.Sprintf("junk-%d", i)), nil)
	}
	if got := testutil.CollectAndCount(publishedTotal); got > before+1 {
		t.Fatalf("published_total series grew from %d to %d", before, got)
	}
	if got := testutil.ToFloat64(publishedTotal.WithLabelValues(unsubscribedLabel)); got != baseline+500 {
		t.Fatalf("unsubscribed=%v, want %v", got, baseline+500)
	}
	rr := httptest.NewRecorder()
	promhttp.Handler().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if bytes.Contains(rr.Body.Bytes(), []byte(`topic="junk-`)) {
		t.Fatalf("junk topic leaked into metrics")
	}
}
