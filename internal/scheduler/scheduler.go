package scheduler

import (
	"context"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"region-analytics/internal/events"
	"region-analytics/internal/ingestors"
	"region-analytics/internal/models"
	"region-analytics/internal/shared/configs"
	"region-analytics/internal/shared/loggers"
	"region-analytics/internal/shared/svcerrors"
	"region-analytics/internal/shared/ulid"
)

//go:generate mockgen -source=scheduler.go -destination=./mocks/scheduler_mock.go -package=mocks
type Scheduler interface {
	// Start registers the interval entry and starts the run loop. It is a
	// logged no-op when scheduling is disabled by configuration, the
	// scheduler is already running, or it has been stopped.
	Start(ctx context.Context)
	// Stop halts the interval timer and waits for any in-flight run to
	// finish before returning. No run is ever abandoned mid-write. Stop is
	// terminal: a stopped scheduler cannot be restarted.
	Stop()
	// TriggerRun enqueues one run through the same single-flight path the
	// interval timer uses. daysBack overrides the configured lookback for
	// this run only; zero keeps the default. Returns a conflict error when
	// a run is already pending or in flight.
	TriggerRun(reason string, daysBack int) *svcerrors.ServiceError
	// Status returns a consistent, non-blocking counters snapshot.
	Status() models.SchedulerStatus
}

// counters is the scheduler's only mutable shared state. The run loop is the
// sole writer; Status replaces/reads the whole struct under the mutex, so a
// reader can never observe a half-updated set.
type counters struct {
	totalRuns      int64
	successfulRuns int64
	failedRuns     int64
	lastRun        *time.Time
	lastOutcome    *models.RunOutcome
}

type scheduler struct {
	ingestion ingestors.IngestionService
	cfg       configs.SchedulerConfig
	logger    loggers.Logger

	cron    *cron.Cron
	entryID cron.EntryID

	// triggers has capacity 1: one run may be pending while another is in
	// flight; anything beyond that is collapsed.
	triggers chan events.IngestionTrigger

	mu       sync.Mutex
	running  bool
	stopped  bool
	inFlight bool
	state    counters

	wg       sync.WaitGroup
	stopOnce sync.Once
	stopCh   chan struct{}
}

func New(ingestion ingestors.IngestionService, cfg configs.SchedulerConfig, logger loggers.Logger) Scheduler {
	return &scheduler{
		ingestion: ingestion,
		cfg:       cfg,
		logger:    logger,
		triggers:  make(chan events.IngestionTrigger, 1),
		stopCh:    make(chan struct{}),
	}
}

func (s *scheduler) Start(ctx context.Context) {
	if !s.cfg.Enabled {
		s.logger.Info().Msg("scheduler is disabled in configuration")
		return
	}

	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		s.logger.Warn().Msg("scheduler was stopped and cannot be restarted")
		return
	}
	if s.running {
		s.mu.Unlock()
		s.logger.Warn().Msg("scheduler is already running")
		return
	}

	c := cron.New()
	expr := fmt.Sprintf("@every %dh", s.cfg.IntervalHours)
	entryID, err := c.AddFunc(expr, func() {
		if !s.enqueueTick(events.IngestionTrigger{Reason: events.TriggerInterval, RequestedAt: time.Now().UTC()}) {
			// Single-flight: a tick that lands while a run is pending or in
			// flight is skipped entirely, never queued behind it. The next
			// tick covers the same rolling window, so nothing is owed.
			s.logger.Warn().Msg("interval tick skipped, previous run still in flight")
			metricTicksSkippedTotal.Inc()
		}
	})
	if err != nil {
		s.mu.Unlock()
		// The expression is built from a validated integer, this cannot happen.
		s.logger.Error().Err(err).Msg("failed to register cron entry")
		return
	}
	s.cron = c
	s.entryID = entryID
	s.running = true
	s.mu.Unlock()

	s.cron.Start()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.runLoop(ctx)
	}()

	s.logger.Info().
		Int("interval_hours", s.cfg.IntervalHours).
		Str(loggers.FieldRegion, s.cfg.RegionName).
		Msg("scheduler started")

	if s.cfg.ProcessHistorical {
		s.logger.Info().Int("days_back", s.cfg.HistoricalDays).Msg("enqueueing initial historical run")
		s.enqueue(events.IngestionTrigger{
			Reason:      events.TriggerStartup,
			DaysBack:    s.cfg.HistoricalDays,
			RequestedAt: time.Now().UTC(),
		})
	}
}

func (s *scheduler) Stop() {
	s.mu.Lock()
	wasRunning := s.running
	s.running = false
	s.stopped = true
	s.mu.Unlock()

	if !wasRunning {
		s.logger.Warn().Msg("scheduler is not running")
		return
	}

	s.logger.Info().Msg("stopping scheduler, draining in-flight run")
	if s.cron != nil {
		s.cron.Stop()
	}
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	s.logger.Info().Msg("scheduler stopped")
}

func (s *scheduler) TriggerRun(reason string, daysBack int) *svcerrors.ServiceError {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()
	if !running {
		return errSchedulerNotRunning()
	}

	trigger := events.IngestionTrigger{
		Reason:      reason,
		DaysBack:    daysBack,
		RequestedAt: time.Now().UTC(),
	}
	if !s.enqueue(trigger) {
		return errRunInFlight()
	}
	return nil
}

func (s *scheduler) Status() models.SchedulerStatus {
	s.mu.Lock()
	state := s.state
	running := s.running
	c := s.cron
	entryID := s.entryID
	s.mu.Unlock()

	status := models.SchedulerStatus{
		Enabled:          s.cfg.Enabled,
		Running:          running,
		IntervalHours:    s.cfg.IntervalHours,
		LastRun:          state.lastRun,
		TotalRuns:        state.totalRuns,
		SuccessfulRuns:   state.successfulRuns,
		FailedRuns:       state.failedRuns,
		LastOutcome:      state.lastOutcome,
		SearchBounds:     s.cfg.SearchBounds,
		MaxCloudCoverage: s.cfg.MaxCloudCoveragePct,
	}
	if running && c != nil {
		if next := c.Entry(entryID).Next; !next.IsZero() {
			status.NextRun = &next
		}
	}
	return status
}

// enqueue offers a trigger without blocking. False means one is already
// pending; the caller decides whether that is a skip or a rejection. A
// manual trigger may land here while a run is in flight: it waits its turn
// as the single pending slot.
func (s *scheduler) enqueue(trigger events.IngestionTrigger) bool {
	select {
	case s.triggers <- trigger:
		return true
	default:
		return false
	}
}

// enqueueTick is the interval timer's stricter variant of enqueue: a tick
// is skipped outright when a run is pending or in flight, it never waits in
// the pending slot the way a manual trigger may.
func (s *scheduler) enqueueTick(trigger events.IngestionTrigger) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	select {
	case s.triggers <- trigger:
		return true
	default:
		return false
	}
}

// runLoop is the single consumer of the trigger queue and the sole writer of
// the counters. Draining triggers one at a time is what makes the
// single-flight guarantee hold for scheduled and manual runs alike.
func (s *scheduler) runLoop(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case trigger := <-s.triggers:
			// Mark in flight at the moment of dequeue, before any run
			// setup, so a tick can never slip into the freed buffer slot.
			s.mu.Lock()
			s.inFlight = true
			s.mu.Unlock()
			s.executeRun(ctx, trigger)
		}
	}
}

// executeRun performs one ingestion and records its outcome. Nothing may
// propagate past this boundary: the loop must survive any single run's
// failure indefinitely, including panics.
func (s *scheduler) executeRun(ctx context.Context, trigger events.IngestionTrigger) {
	runID := ulid.NewULID()
	runLogger := s.logger.With().
		Str(loggers.FieldRunID, runID).
		Str(loggers.FieldTrigger, trigger.Reason).
		Logger()
	ctx = runLogger.WithContext(ctx)

	s.beginRun()

	var outcome *models.RunOutcome
	defer func() {
		if r := recover(); r != nil {
			runLogger.Error().
				Bytes(loggers.FieldErrorStack, debug.Stack()).
				Msgf("ingestion run panic recovered: %v", r)
			outcome = &models.RunOutcome{
				RunID:     runID,
				Trigger:   trigger.Reason,
				StartedAt: time.Now().UTC(),
				Status:    models.RunFailure,
				Error:     fmt.Sprintf("panic: %v", r),
			}
		}
		s.finishRun(outcome)
	}()

	daysBack := trigger.DaysBack
	if daysBack <= 0 {
		daysBack = s.cfg.LookbackDays
	}
	to := time.Now().UTC()
	from := to.AddDate(0, 0, -daysBack)

	outcome = s.ingestion.RunIngestion(ctx, ingestors.RunParams{
		RunID:   runID,
		Trigger: trigger.Reason,
		From:    from,
		To:      to,
	})
}

func (s *scheduler) beginRun() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.totalRuns++
}

func (s *scheduler) finishRun(outcome *models.RunOutcome) {
	if outcome == nil {
		outcome = &models.RunOutcome{
			StartedAt: time.Now().UTC(),
			Status:    models.RunFailure,
			Error:     "run produced no outcome",
		}
	}

	s.mu.Lock()
	s.inFlight = false
	lastRun := outcome.StartedAt
	s.state.lastRun = &lastRun
	s.state.lastOutcome = outcome
	if outcome.Status.IsSuccessful() {
		s.state.successfulRuns++
	} else {
		s.state.failedRuns++
	}
	s.mu.Unlock()

	metricRunsTotal.WithLabelValues(string(outcome.Status)).Inc()
	metricRecordsWrittenLastRun.Set(float64(outcome.RecordsWritten))
}
