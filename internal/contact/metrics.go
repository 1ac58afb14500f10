package contact

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	metricsOnce          sync.Once
	submissionsTotal     *prometheus.CounterVec
	relayDurationSeconds prometheus.Histogram
	openForms            prometheus.Gauge
)

func initMetrics() {
	metricsOnce.Do(func() {
		submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "aivanta",
			Subsystem: "contact",
			Name:      "submissions_total",
			Help:      "Contact form submissions by outcome.",
		}, []string{"result"})

		relayDurationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: "aivanta",
			Subsystem: "contact",
			Name:      "relay_duration_seconds",
			Help:      "Duration of form relay deliveries.",
			Buckets:   prometheus.DefBuckets,
		})

		openForms = promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: "aivanta",
			Subsystem: "contact",
			Name:      "open_forms",
			Help:      "Contact forms issued and not yet expired.",
		})
	})
}
