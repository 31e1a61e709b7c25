package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// ObserveBucketValidation counts one bucket check and records its duration.
// Example: defer m.ObserveBucketValidation(time.Now(), metrics.ResultSuccess)
func (m *Metrics) ObserveBucketValidation(start time.Time, result string) {
	m.bucketValidations.WithLabelValues(result).Inc()
	m.validationDuration.WithLabelValues(result).Observe(time.Since(start).Seconds())
}

// IncrementCredentialResolutions counts one credential lookup.
// Example: m.IncrementCredentialResolutions("delegated", metrics.ResultError)
func (m *Metrics) IncrementCredentialResolutions(mode, result string) {
	m.credentialResolutions.WithLabelValues(mode, result).Inc()
}

func createCounterVec(namespace, name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

func createHistogramVec(namespace, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}
