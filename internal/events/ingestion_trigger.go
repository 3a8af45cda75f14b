package events

import "time"

// Trigger reasons, recorded on the resulting run outcome so logs distinguish
// scheduled ticks from operator-initiated runs.
const (
	TriggerInterval = "interval"
	TriggerStartup  = "startup"
	TriggerManual   = "manual"
)

// IngestionTrigger asks the scheduler's run loop to execute one ingestion.
// The interval timer and the manual/administrative path both enqueue this
// same message; the loop drains triggers one at a time, so at most one run
// is ever in flight.
//
// Example JSON:
//
//	{
//	  "reason": "manual",
//	  "daysBack": 30,
//	  "requestedAt": "2026-08-28T06:00:00Z"
//	}
//
// DaysBack overrides the configured lookback window for this trigger only;
// zero means "use the configured default". Startup triggers use the longer
// historical lookback so a fresh deployment backfills its region.
type IngestionTrigger struct {
	Reason      string    `json:"reason"`
	DaysBack    int       `json:"daysBack"`
	RequestedAt time.Time `json:"requestedAt"`
}
