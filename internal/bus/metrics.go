package bus

import "github.com/prometheus/client_golang/prometheus"

// unsubscribedLabel is the topic label for publishes that reached no listener.
const unsubscribedLabel = "unsubscribed"

var (
	publishedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notifyd",
			Subsystem: "bus",
			Name:      "published_total",
			Help:      "Total number of Publish calls; topics without listeners are counted as unsubscribed",
		},
		[]string{"topic"},
	)

	deliveriesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notifyd",
			Subsystem: "bus",
			Name:      "deliveries_total",
			Help:      "Total number of listener invocations",
		},
		[]string{"topic"},
	)

	subscriptionsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "notifyd",
			Subsystem: "bus",
			Name:      "subscriptions",
			Help:      "Live listener registrations across all open notifiers",
		},
	)
)

func init() {
	prometheus.MustRegister(publishedTotal, deliveriesTotal, subscriptionsGauge)
}
