package aggregators

import (
	"region-analytics/internal/shared/metrics"
)

// metricCanonicalRecordsTotal counts canonical per-day records produced by
// the canonicalizer, labeled by index type. Discarded zero-sample buckets
// and same-day duplicates never reach this counter, so comparing it against
// the provider entry count gives the dedup/discard rate.
var (
	metricCanonicalRecordsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubAggregation,
			Name:      "canonical_records_total",
		},
		[]string{"index_type"},
	)
)
