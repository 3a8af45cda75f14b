package ingestors

import (
	"region-analytics/internal/shared/metrics"
)

var (
	// metricRecordsWrittenTotal counts canonical records successfully
	// upserted, by index type.
	metricRecordsWrittenTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "records_written_total",
		},
		[]string{"index_type"},
	)

	// metricUpsertFailuresTotal counts per-date upsert failures that were
	// skipped without aborting the run. A nonzero rate with a successful
	// run status is the partial-persistence signal.
	metricUpsertFailuresTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "upsert_failures_total",
		},
		[]string{"index_type"},
	)

	// metricFetchFailuresTotal counts isolated per-index provider fetch
	// failures.
	metricFetchFailuresTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubIngestion,
			Name:      "fetch_failures_total",
		},
		[]string{"index_type"},
	)
)
