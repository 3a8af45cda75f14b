package providers

import (
	"region-analytics/internal/shared/metrics"
)

var (
	// metricProviderRequestsTotal counts upstream statistical requests by
	// index type and HTTP status.
	metricProviderRequestsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProvider,
			Name:      "requests_total",
		},
		[]string{"index_type", "status"},
	)

	// metricCircuitBreakerState mirrors the breaker state:
	// 0 closed, 1 half-open, 2 open.
	metricCircuitBreakerState = metrics.NewGaugeVec(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubProvider,
			Name:      "circuit_breaker_state",
		},
		[]string{"breaker"},
	)
)
