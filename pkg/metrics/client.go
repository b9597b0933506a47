package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for client calls.
const (
	OutcomeSuccess       = "success"
	OutcomeAPIError      = "api_error"
	OutcomeTransport     = "transport_failure"
	OutcomeSerialization = "serialization_failure"
	OutcomeValidation    = "validation_error"
)

// ClientMetrics records outbound Razorpay API calls.
type ClientMetrics struct {
	duration *prometheus.HistogramVec
	requests *prometheus.CounterVec
}

// NewClientMetrics registers the client metrics on the provided registerer.
func NewClientMetrics(reg prometheus.Registerer) *ClientMetrics {
	if reg == nil {
		return &ClientMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "razorpay_request_duration_seconds",
		Help:    "Duration of Razorpay API calls in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "method"})
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "razorpay_requests_total",
		Help: "Razorpay API calls by outcome.",
	}, []string{"operation", "method", "outcome"})
	reg.MustRegister(duration, requests)
	return &ClientMetrics{
		duration: duration,
		requests: requests,
	}
}

// Observe records one completed call.
func (c *ClientMetrics) Observe(operation, method, outcome string, duration time.Duration) {
	if c == nil || c.duration == nil || c.requests == nil {
		return
	}
	op := normalizeLabel(operation)
	m := normalizeLabel(method)
	c.duration.WithLabelValues(op, m).Observe(duration.Seconds())
	c.requests.WithLabelValues(op, m, normalizeLabel(outcome)).Inc()
}

func normalizeLabel(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
