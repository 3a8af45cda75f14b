package http

import (
	"net/http"

	"region-analytics/internal/scheduler"
	"region-analytics/internal/shared/loggers"
	"region-analytics/internal/shared/metrics"
	"region-analytics/internal/stores"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates and configures the HTTP router.
func NewRouter(sched scheduler.Scheduler, statisticStore stores.RegionStatisticStore, httpLogger loggers.Logger) http.Handler {
	router := chi.NewRouter()
	setupMiddleware(router, httpLogger)

	// Initialize handlers
	schedulerStatusHandler := NewSchedulerStatusHandler(sched)
	schedulerTriggerHandler := NewSchedulerTriggerHandler(sched)
	regionStatisticsHandler := NewRegionStatisticsHandler(statisticStore)
	availableDatesHandler := NewAvailableDatesHandler(statisticStore)

	// Routes
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_ = writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	router.Get("/scheduler/status", errorHandlingAdapter(schedulerStatusHandler))
	router.Post("/scheduler/run", errorHandlingAdapter(schedulerTriggerHandler))
	router.Get("/statistics/region", errorHandlingAdapter(regionStatisticsHandler))
	router.Get("/statistics/region/dates", errorHandlingAdapter(availableDatesHandler))
	router.Get("/metrics", metrics.PromHTTP.Handler().ServeHTTP)

	return router
}
