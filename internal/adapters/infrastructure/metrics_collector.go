package infrastructure

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const metricsNamespace = "xisms"

// PrometheusMetricsCollector implements the MetricsCollector port with
// prometheus collectors
type PrometheusMetricsCollector struct {
	deliveries       *prometheus.CounterVec
	deliveryDuration *prometheus.HistogramVec
	codesIssued      prometheus.Counter
	verifications    *prometheus.CounterVec
}

// NewPrometheusMetricsCollector registers the collectors with reg. Pass
// prometheus.DefaultRegisterer to expose them on the default /metrics handler.
func NewPrometheusMetricsCollector(reg prometheus.Registerer) *PrometheusMetricsCollector {
	factory := promauto.With(reg)

	return &PrometheusMetricsCollector{
		deliveries: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "email_deliveries_total",
				Help:      "The total number of email delivery attempts",
			},
			[]string{"provider", "result"},
		),
		deliveryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "email_delivery_duration_seconds",
				Help:      "Email delivery attempt duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		codesIssued: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "codes_issued_total",
				Help:      "The total number of one-time codes issued",
			},
		),
		verifications: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "code_verifications_total",
				Help:      "The total number of code verification attempts by outcome",
			},
			[]string{"outcome"},
		),
	}
}

func (m *PrometheusMetricsCollector) RecordDelivery(provider string, success bool, duration time.Duration) {
	result := "success"
	if !success {
		result = "failure"
	}
	m.deliveries.WithLabelValues(provider, result).Inc()
	m.deliveryDuration.WithLabelValues(provider).Observe(duration.Seconds())
}

func (m *PrometheusMetricsCollector) RecordCodeIssued() {
	m.codesIssued.Inc()
}

func (m *PrometheusMetricsCollector) RecordVerification(outcome string) {
	m.verifications.WithLabelValues(outcome).Inc()
}
