package providers

import (
	"context"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"region-analytics/internal/models"
	"region-analytics/internal/shared/loggers"
)

// circuitBreakerProvider wraps a StatisticsProvider so that a flapping or
// down upstream fails fast instead of burning every run's time budget on
// timeouts. The scheduler's fixed interval is the retry policy; the breaker
// only decides whether a run's fetch gets attempted at all.
type circuitBreakerProvider struct {
	inner   StatisticsProvider
	breaker *gobreaker.CircuitBreaker[*FetchResult]
}

// NewCircuitBreakerProvider wraps inner with a circuit breaker. The breaker
// opens after a 60% failure rate over at least 5 requests and probes again
// after two minutes.
func NewCircuitBreakerProvider(inner StatisticsProvider, logger loggers.Logger) StatisticsProvider {
	name := "statistics-provider"
	metricCircuitBreakerState.WithLabelValues(name).Set(0)

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 5 {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("provider circuit breaker state change")
			metricCircuitBreakerState.WithLabelValues(name).Set(stateValue(to))
		},
	}

	return &circuitBreakerProvider{
		inner:   inner,
		breaker: gobreaker.NewCircuitBreaker[*FetchResult](settings),
	}
}

func (p *circuitBreakerProvider) FetchStatistics(ctx context.Context, bbox models.BBox, from, to time.Time, indexType models.IndexType) (*FetchResult, error) {
	return p.breaker.Execute(func() (*FetchResult, error) {
		return p.inner.FetchStatistics(ctx, bbox, from, to, indexType)
	})
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
