package models

import "time"

type RunStatus string

const (
	RunSuccess RunStatus = "success"
	RunFailure RunStatus = "failure"
	RunNoData  RunStatus = "no-data"
)

// IsSuccessful reports whether the run counts toward successful_runs.
// Absence of new data is not an error.
func (s RunStatus) IsSuccessful() bool {
	return s == RunSuccess || s == RunNoData
}

// RunOutcome is the result of one ingestion run. It is a value, not an
// exception: nothing above the run is allowed to raise, callers inspect the
// outcome instead.
type RunOutcome struct {
	RunID          string    `json:"runId"`
	Trigger        string    `json:"trigger"`
	StartedAt      time.Time `json:"startedAt"`
	Status         RunStatus `json:"status"`
	RecordsWritten int       `json:"recordsWritten"`
	Error          string    `json:"error,omitempty"`
	// Warnings carries failures that were isolated rather than fatal, such
	// as one index type's fetch failing while the other succeeded. They are
	// visible through the status endpoint, not just the logs.
	Warnings []string `json:"warnings,omitempty"`
}

// SchedulerStatus is a consistent point-in-time snapshot of the scheduler's
// counters and configuration, safe to expose while a run is in flight.
type SchedulerStatus struct {
	Enabled          bool        `json:"enabled"`
	Running          bool        `json:"running"`
	IntervalHours    int         `json:"intervalHours"`
	LastRun          *time.Time  `json:"lastRun"`
	NextRun          *time.Time  `json:"nextRun"`
	TotalRuns        int64       `json:"totalRuns"`
	SuccessfulRuns   int64       `json:"successfulRuns"`
	FailedRuns       int64       `json:"failedRuns"`
	LastOutcome      *RunOutcome `json:"lastOutcome,omitempty"`
	SearchBounds     string      `json:"searchBounds"`
	MaxCloudCoverage float64     `json:"maxCloudCoverage"`
}
