package metrics

import "github.com/prometheus/client_golang/prometheus"

// Webhook result labels.
const (
	WebhookProcessed    = "processed"
	WebhookDuplicate    = "duplicate"
	WebhookRejected     = "rejected"
	WebhookHandlerError = "handler_error"
)

// WebhookMetrics counts inbound webhook deliveries.
type WebhookMetrics struct {
	events *prometheus.CounterVec
}

// NewWebhookMetrics registers the webhook counters on the provided registerer.
func NewWebhookMetrics(reg prometheus.Registerer) *WebhookMetrics {
	if reg == nil {
		return &WebhookMetrics{}
	}
	events := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "razorpay_webhook_events_total",
		Help: "Razorpay webhook deliveries by event type and result.",
	}, []string{"event", "result"})
	reg.MustRegister(events)
	return &WebhookMetrics{events: events}
}

// Inc increments the counter for an event type and result.
func (w *WebhookMetrics) Inc(event, result string) {
	if w == nil || w.events == nil {
		return
	}
	w.events.WithLabelValues(normalizeLabel(event), normalizeLabel(result)).Inc()
}
