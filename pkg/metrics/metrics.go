package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all application metrics
type Metrics struct {
	// Dialogue metrics
	FlowTransitions *prometheus.CounterVec
	FlowErrors      *prometheus.CounterVec

	// Booking metrics
	BookingsSubmitted *prometheus.CounterVec

	// Remote booking API metrics
	APIRequestDuration *prometheus.HistogramVec
	APIErrors          *prometheus.CounterVec

	// Session store metrics
	ActiveSessions prometheus.Gauge
}

// NewMetrics creates and registers all application metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		FlowTransitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flow_transitions_total",
			Help:      "Total number of booking dialogue transitions",
		}, []string{"state", "event"}),
		FlowErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "flow_errors_total",
			Help:      "Total number of dialogue errors by class",
		}, []string{"class"}),
		BookingsSubmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookings_submitted_total",
			Help:      "Total number of booking submissions",
		}, []string{"status"}),
		APIRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "api_request_duration_seconds",
			Help:      "Duration of calls to the booking API",
			Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		}, []string{"endpoint"}),
		APIErrors: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "api_errors_total",
			Help:      "Total number of failed booking API calls",
		}, []string{"endpoint"}),
		ActiveSessions: promauto.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_sessions",
			Help:      "Current number of live user sessions",
		}),
	}
}
