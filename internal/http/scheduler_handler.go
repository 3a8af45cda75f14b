package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"region-analytics/internal/events"
	"region-analytics/internal/scheduler"
)

type schedulerStatusHandler struct {
	scheduler scheduler.Scheduler
}

func NewSchedulerStatusHandler(sched scheduler.Scheduler) AppHttpHandler {
	return &schedulerStatusHandler{
		scheduler: sched,
	}
}

// Handle processes GET /scheduler/status requests.
func (h *schedulerStatusHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	return writeJSON(w, http.StatusOK, h.scheduler.Status())
}

// TriggerRunRequest is the optional body of POST /scheduler/run. DaysBack
// overrides the configured lookback window for this run only.
type TriggerRunRequest struct {
	DaysBack int `json:"daysBack"`
}

// TriggerRunResponse acknowledges that a run was enqueued, not that it
// finished. Progress is observable via GET /scheduler/status.
type TriggerRunResponse struct {
	Status  string `json:"status"`
	Trigger string `json:"trigger"`
}

type schedulerTriggerHandler struct {
	scheduler scheduler.Scheduler
}

func NewSchedulerTriggerHandler(sched scheduler.Scheduler) AppHttpHandler {
	return &schedulerTriggerHandler{
		scheduler: sched,
	}
}

// Handle processes POST /scheduler/run requests.
func (h *schedulerTriggerHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	var req TriggerRunRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		return errInvalidTriggerBody(err)
	}
	if req.DaysBack < 0 {
		return errInvalidDaysBack(req.DaysBack)
	}

	if svcErr := h.scheduler.TriggerRun(events.TriggerManual, req.DaysBack); svcErr != nil {
		return svcErr
	}

	return writeJSON(w, http.StatusAccepted, TriggerRunResponse{
		Status:  "accepted",
		Trigger: events.TriggerManual,
	})
}
