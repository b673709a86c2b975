package notify

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "settingshub"

var (
	eventsSent = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "sent_total",
			Help:      "Total settings-updated events sent, by outcome",
		},
		[]string{"status"},
	)

	eventSendDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "events",
			Name:      "send_duration_seconds",
			Help:      "Time to deliver a settings-updated event",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"status"},
	)
)

// RecordEventSent records one delivery attempt outcome.
func RecordEventSent(status string, duration time.Duration) {
	eventsSent.WithLabelValues(status).Inc()
	eventSendDuration.WithLabelValues(status).Observe(duration.Seconds())
}
