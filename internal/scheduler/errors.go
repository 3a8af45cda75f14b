package scheduler

import "region-analytics/internal/shared/svcerrors"

const (
	codeRunInFlight         = "SCH_1000"
	codeSchedulerNotRunning = "SCH_1001"
)

func errRunInFlight() *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeRunInFlight, "an ingestion run is already pending or in flight", nil)
}

func errSchedulerNotRunning() *svcerrors.ServiceError {
	return svcerrors.NewResourceConflictError(codeSchedulerNotRunning, "the scheduler is not running", nil)
}
