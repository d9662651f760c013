package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// AuthAttempts records authentication attempts by result (success|failure).
	AuthAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "portfolio_auth_attempts_total",
			Help: "Total number of authentication attempts",
		},
		[]string{"result"},
	)

	// OrdersReceived counts marketplace order inquiries.
	OrdersReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_orders_received_total",
			Help: "Total number of marketplace order inquiries",
		},
	)

	// BookingsReceived counts booking requests.
	BookingsReceived = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "portfolio_bookings_received_total",
			Help: "Total number of booking requests",
		},
	)

	// APILatency measures HTTP request latencies.
	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "portfolio_api_latency_seconds",
			Help:    "API endpoint latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)
