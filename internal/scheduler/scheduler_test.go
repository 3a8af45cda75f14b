package scheduler_test

import (
	"context"
	"testing"
	"time"

	"region-analytics/internal/events"
	"region-analytics/internal/ingestors"
	ingestormocks "region-analytics/internal/ingestors/mocks"
	"region-analytics/internal/models"
	"region-analytics/internal/scheduler"
	"region-analytics/internal/shared/configs"
	"region-analytics/internal/shared/loggers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func testConfig() configs.SchedulerConfig {
	return configs.SchedulerConfig{
		Enabled:              true,
		IntervalHours:        1000, // keep interval ticks out of the test's way
		LookbackDays:         7,
		HistoricalDays:       365,
		RegionName:           "Trnava",
		SearchBounds:         "POLYGON((17.53 48.32, 17.68 48.32, 17.68 48.42, 17.53 48.42, 17.53 48.32))",
		MaxCloudCoveragePct:  20,
		AggregationPeriodISO: "P1D",
	}
}

func newTestScheduler(t *testing.T, cfg configs.SchedulerConfig) (scheduler.Scheduler, *ingestormocks.MockIngestionService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	ingestion := ingestormocks.NewMockIngestionService(ctrl)
	logger, err := loggers.New("error")
	require.NoError(t, err)
	return scheduler.New(ingestion, cfg, logger), ingestion
}

func successOutcome(params ingestors.RunParams) *models.RunOutcome {
	return &models.RunOutcome{
		RunID:          params.RunID,
		Trigger:        params.Trigger,
		StartedAt:      time.Now().UTC(),
		Status:         models.RunSuccess,
		RecordsWritten: 3,
	}
}

func waitFor(t *testing.T, ch <-chan struct{}, msg string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(5 * time.Second):
		t.Fatal(msg)
	}
}

func TestTriggerRun_NotRunning(t *testing.T) {
	t.Parallel()

	sched, _ := newTestScheduler(t, testConfig())

	svcErr := sched.TriggerRun(events.TriggerManual, 0)

	require.NotNil(t, svcErr)
	assert.Equal(t, "SCH_1001", svcErr.Code)
	assert.Equal(t, "resource_conflict", svcErr.Category)
}

func TestScheduler_DisabledStartIsNoOp(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.Enabled = false
	sched, _ := newTestScheduler(t, cfg)

	sched.Start(context.Background())
	defer sched.Stop()

	status := sched.Status()
	assert.False(t, status.Enabled)
	assert.False(t, status.Running)
	assert.Nil(t, status.NextRun)

	svcErr := sched.TriggerRun(events.TriggerManual, 0)
	require.NotNil(t, svcErr)
	assert.Equal(t, "SCH_1001", svcErr.Code)
}

func TestScheduler_ManualRunUpdatesCounters(t *testing.T) {
	t.Parallel()

	sched, ingestion := newTestScheduler(t, testConfig())
	ran := make(chan struct{})
	ingestion.EXPECT().RunIngestion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ingestors.RunParams) *models.RunOutcome {
			defer close(ran)
			assert.NotEmpty(t, params.RunID)
			assert.Equal(t, events.TriggerManual, params.Trigger)
			// default lookback window is LookbackDays wide
			assert.InDelta(t, 7*24*time.Hour, params.To.Sub(params.From), float64(time.Minute))
			return successOutcome(params)
		})

	sched.Start(context.Background())
	require.Nil(t, sched.TriggerRun(events.TriggerManual, 0))
	waitFor(t, ran, "run never executed")
	sched.Stop() // drains the in-flight run before returning

	status := sched.Status()
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, int64(1), status.SuccessfulRuns)
	assert.Equal(t, int64(0), status.FailedRuns)
	require.NotNil(t, status.LastRun)
	require.NotNil(t, status.LastOutcome)
	assert.Equal(t, models.RunSuccess, status.LastOutcome.Status)
	assert.Equal(t, 3, status.LastOutcome.RecordsWritten)
}

func TestScheduler_DaysBackOverridesWindow(t *testing.T) {
	t.Parallel()

	sched, ingestion := newTestScheduler(t, testConfig())
	ran := make(chan struct{})
	ingestion.EXPECT().RunIngestion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ingestors.RunParams) *models.RunOutcome {
			defer close(ran)
			assert.InDelta(t, 30*24*time.Hour, params.To.Sub(params.From), float64(time.Minute))
			return successOutcome(params)
		})

	sched.Start(context.Background())
	require.Nil(t, sched.TriggerRun(events.TriggerManual, 30))
	waitFor(t, ran, "run never executed")
	sched.Stop()
}

func TestScheduler_SingleFlight(t *testing.T) {
	t.Parallel()

	sched, ingestion := newTestScheduler(t, testConfig())
	started := make(chan struct{})
	gate := make(chan struct{})
	ingestion.EXPECT().RunIngestion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ingestors.RunParams) *models.RunOutcome {
			select {
			case started <- struct{}{}:
			default:
			}
			<-gate
			return successOutcome(params)
		}).AnyTimes()

	sched.Start(context.Background())

	// First trigger is consumed by the loop and blocks inside the run.
	require.Nil(t, sched.TriggerRun(events.TriggerManual, 0))
	waitFor(t, started, "first run never started")

	// One more trigger may wait in the queue while the run is in flight.
	require.Nil(t, sched.TriggerRun(events.TriggerManual, 0))

	// Beyond that, triggers are rejected, not stacked.
	svcErr := sched.TriggerRun(events.TriggerManual, 0)
	require.NotNil(t, svcErr)
	assert.Equal(t, "SCH_1000", svcErr.Code)
	assert.Equal(t, "resource_conflict", svcErr.Category)

	close(gate)
	sched.Stop()
}

func TestScheduler_NoDataCountsAsSuccess(t *testing.T) {
	t.Parallel()

	sched, ingestion := newTestScheduler(t, testConfig())
	ran := make(chan struct{})
	ingestion.EXPECT().RunIngestion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ingestors.RunParams) *models.RunOutcome {
			defer close(ran)
			return &models.RunOutcome{
				RunID:     params.RunID,
				Trigger:   params.Trigger,
				StartedAt: time.Now().UTC(),
				Status:    models.RunNoData,
			}
		})

	sched.Start(context.Background())
	require.Nil(t, sched.TriggerRun(events.TriggerManual, 0))
	waitFor(t, ran, "run never executed")
	sched.Stop()

	status := sched.Status()
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, int64(1), status.SuccessfulRuns)
	assert.Equal(t, int64(0), status.FailedRuns)
	assert.Equal(t, models.RunNoData, status.LastOutcome.Status)
}

func TestScheduler_RunPanicIsRecoveredAndCounted(t *testing.T) {
	t.Parallel()

	sched, ingestion := newTestScheduler(t, testConfig())
	first := make(chan struct{})
	second := make(chan struct{})
	gomock.InOrder(
		ingestion.EXPECT().RunIngestion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ ingestors.RunParams) *models.RunOutcome {
				close(first)
				panic("boom")
			}),
		ingestion.EXPECT().RunIngestion(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params ingestors.RunParams) *models.RunOutcome {
				defer close(second)
				return successOutcome(params)
			}),
	)

	sched.Start(context.Background())
	require.Nil(t, sched.TriggerRun(events.TriggerManual, 0))
	waitFor(t, first, "first run never executed")

	// The loop must survive the panic and keep serving triggers.
	require.Eventually(t, func() bool {
		return sched.TriggerRun(events.TriggerManual, 0) == nil
	}, 5*time.Second, 10*time.Millisecond)
	waitFor(t, second, "second run never executed")
	sched.Stop()

	status := sched.Status()
	assert.Equal(t, int64(2), status.TotalRuns)
	assert.Equal(t, int64(1), status.SuccessfulRuns)
	assert.Equal(t, int64(1), status.FailedRuns)
	assert.Equal(t, models.RunSuccess, status.LastOutcome.Status)
}

func TestScheduler_StartupHistoricalRun(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	cfg.ProcessHistorical = true
	sched, ingestion := newTestScheduler(t, cfg)
	ran := make(chan struct{})
	ingestion.EXPECT().RunIngestion(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params ingestors.RunParams) *models.RunOutcome {
			defer close(ran)
			assert.Equal(t, events.TriggerStartup, params.Trigger)
			assert.InDelta(t, 365*24*time.Hour, params.To.Sub(params.From), float64(time.Hour))
			return successOutcome(params)
		})

	sched.Start(context.Background())
	waitFor(t, ran, "historical run never executed")
	sched.Stop()

	status := sched.Status()
	assert.Equal(t, int64(1), status.TotalRuns)
	assert.Equal(t, int64(1), status.SuccessfulRuns)
}

func TestScheduler_StatusReportsNextRun(t *testing.T) {
	t.Parallel()

	sched, _ := newTestScheduler(t, testConfig())
	sched.Start(context.Background())
	defer sched.Stop()

	status := sched.Status()
	assert.True(t, status.Enabled)
	assert.True(t, status.Running)
	assert.Equal(t, 1000, status.IntervalHours)
	require.NotNil(t, status.NextRun)
	assert.True(t, status.NextRun.After(time.Now()))
	assert.Equal(t, float64(20), status.MaxCloudCoverage)
	assert.NotEmpty(t, status.SearchBounds)
}

func TestScheduler_StopIsTerminal(t *testing.T) {
	t.Parallel()

	sched, _ := newTestScheduler(t, testConfig())

	sched.Start(context.Background())
	sched.Stop()

	// A second Start is a logged no-op: the run loop is gone, so accepting
	// triggers again would strand them forever.
	sched.Start(context.Background())
	assert.False(t, sched.Status().Running)

	svcErr := sched.TriggerRun(events.TriggerManual, 0)
	require.NotNil(t, svcErr)
	assert.Equal(t, "SCH_1001", svcErr.Code)
}
