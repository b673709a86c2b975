package schemacheck

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "settingshub"

var schemaValidations = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "schemacheck",
		Name:      "validations_total",
		Help:      "Total schema validations, by result",
	},
	[]string{"result"},
)

// RecordValidation records one validation outcome.
func RecordValidation(result string) {
	schemaValidations.WithLabelValues(result).Inc()
}
