package scheduler

import (
	"region-analytics/internal/shared/metrics"
)

var (
	// metricRunsTotal counts finished ingestion runs by terminal status
	// (success, no_data, failure).
	metricRunsTotal = metrics.NewCounterVec(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "runs_total",
		},
		[]string{"status"},
	)

	// metricTicksSkippedTotal counts interval ticks dropped because a run
	// was still pending or in flight.
	metricTicksSkippedTotal = metrics.NewCounter(
		metrics.CounterOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "ticks_skipped_total",
		},
	)

	metricRecordsWrittenLastRun = metrics.NewGauge(
		metrics.GaugeOpts{
			Namespace: metrics.Namespace,
			Subsystem: metrics.SubScheduler,
			Name:      "records_written_last_run",
		},
	)
)
