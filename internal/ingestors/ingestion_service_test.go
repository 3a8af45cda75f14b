package ingestors_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"region-analytics/internal/aggregators"
	aggregatormocks "region-analytics/internal/aggregators/mocks"
	"region-analytics/internal/ingestors"
	"region-analytics/internal/models"
	"region-analytics/internal/providers"
	providermocks "region-analytics/internal/providers/mocks"
	"region-analytics/internal/shared/configs"
	storemocks "region-analytics/internal/stores/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testBoundsWKT = "POLYGON((17.53 48.32, 17.68 48.32, 17.68 48.42, 17.53 48.42, 17.53 48.32))"

type serviceFixture struct {
	provider      *providermocks.MockStatisticsProvider
	canonicalizer *aggregatormocks.MockDailyCanonicalizer
	store         *storemocks.MockRegionStatisticStore
	archive       *storemocks.MockRawResponseArchive
	service       ingestors.IngestionService
}

func newServiceFixture(t *testing.T, searchBounds string) *serviceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &serviceFixture{
		provider:      providermocks.NewMockStatisticsProvider(ctrl),
		canonicalizer: aggregatormocks.NewMockDailyCanonicalizer(ctrl),
		store:         storemocks.NewMockRegionStatisticStore(ctrl),
		archive:       storemocks.NewMockRawResponseArchive(ctrl),
	}
	f.service = ingestors.NewIngestionService(
		f.provider,
		f.canonicalizer,
		f.store,
		f.archive,
		configs.SchedulerConfig{RegionName: "Trnava", SearchBounds: searchBounds},
		configs.FileStorageConfig{RootDir: t.TempDir(), RetentionDays: 30},
	)
	return f
}

func testParams() ingestors.RunParams {
	to := time.Date(2026, 8, 27, 6, 0, 0, 0, time.UTC)
	return ingestors.RunParams{
		RunID:   "01TESTRUN",
		Trigger: "interval",
		From:    to.AddDate(0, 0, -7),
		To:      to,
	}
}

func record(date string, indexType models.IndexType) *models.RegionStatisticRecord {
	return &models.RegionStatisticRecord{
		RegionName: "Trnava",
		Date:       date,
		IndexType:  indexType,
	}
}

func TestRunIngestion_Success(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, testBoundsWKT)
	ndviResult := &providers.FetchResult{Entries: []*models.RawStatisticsEntry{{}}, RawPayload: []byte(`{"ndvi":true}`)}
	ndwiResult := &providers.FetchResult{Entries: []*models.RawStatisticsEntry{{}}, RawPayload: []byte(`{"ndwi":true}`)}

	f.provider.EXPECT().FetchStatistics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), models.IndexNDVI).Return(ndviResult, nil)
	f.provider.EXPECT().FetchStatistics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), models.IndexNDWI).Return(ndwiResult, nil)
	f.archive.EXPECT().Archive(gomock.Any(), "01TESTRUN", models.IndexNDVI, ndviResult.RawPayload).Return(nil)
	f.archive.EXPECT().Archive(gomock.Any(), "01TESTRUN", models.IndexNDWI, ndwiResult.RawPayload).Return(nil)
	f.canonicalizer.EXPECT().Canonicalize("Trnava", gomock.Any(), models.IndexNDVI, ndviResult.Entries).
		Return([]*models.RegionStatisticRecord{record("2026-08-25", models.IndexNDVI)})
	f.canonicalizer.EXPECT().Canonicalize("Trnava", gomock.Any(), models.IndexNDWI, ndwiResult.Entries).
		Return([]*models.RegionStatisticRecord{record("2026-08-25", models.IndexNDWI)})
	f.store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.archive.EXPECT().Prune(gomock.Any(), gomock.Any()).Return(0, nil)

	outcome := f.service.RunIngestion(context.Background(), testParams())

	require.NotNil(t, outcome)
	assert.Equal(t, models.RunSuccess, outcome.Status)
	assert.Equal(t, 2, outcome.RecordsWritten)
	assert.Empty(t, outcome.Error)
	assert.Equal(t, "01TESTRUN", outcome.RunID)
	assert.Equal(t, "interval", outcome.Trigger)
}

func TestRunIngestion_InvalidBoundsFailsRun(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, "POLYGON((broken")
	// No provider call may happen: the run aborts before fetching.

	outcome := f.service.RunIngestion(context.Background(), testParams())

	require.NotNil(t, outcome)
	assert.Equal(t, models.RunFailure, outcome.Status)
	assert.Contains(t, outcome.Error, "ING_1100")
	assert.Zero(t, outcome.RecordsWritten)
}

func TestRunIngestion_AllFetchesFailed(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, testBoundsWKT)
	providerErr := errors.New("503 service unavailable")
	f.provider.EXPECT().FetchStatistics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, providerErr).Times(2)

	outcome := f.service.RunIngestion(context.Background(), testParams())

	require.NotNil(t, outcome)
	assert.Equal(t, models.RunFailure, outcome.Status)
	assert.Contains(t, outcome.Error, "ING_9100")
}

func TestRunIngestion_OneIndexFailureIsIsolated(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, testBoundsWKT)
	ndwiResult := &providers.FetchResult{Entries: []*models.RawStatisticsEntry{{}}, RawPayload: []byte(`{}`)}

	f.provider.EXPECT().FetchStatistics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), models.IndexNDVI).
		Return(nil, errors.New("timeout"))
	f.provider.EXPECT().FetchStatistics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), models.IndexNDWI).
		Return(ndwiResult, nil)
	f.archive.EXPECT().Archive(gomock.Any(), gomock.Any(), models.IndexNDWI, gomock.Any()).Return(nil)
	f.canonicalizer.EXPECT().Canonicalize(gomock.Any(), gomock.Any(), models.IndexNDWI, gomock.Any()).
		Return([]*models.RegionStatisticRecord{record("2026-08-25", models.IndexNDWI)})
	f.store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	f.archive.EXPECT().Prune(gomock.Any(), gomock.Any()).Return(0, nil)

	outcome := f.service.RunIngestion(context.Background(), testParams())

	assert.Equal(t, models.RunSuccess, outcome.Status)
	assert.Equal(t, 1, outcome.RecordsWritten)
	assert.Empty(t, outcome.Error)
	// The isolated failure must be visible in the outcome itself, not only
	// in the logs.
	require.Len(t, outcome.Warnings, 1)
	assert.Contains(t, outcome.Warnings[0], "ING_9100")
	assert.Contains(t, outcome.Warnings[0], "timeout")
}

func TestRunIngestion_NoDataIsNotFailure(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, testBoundsWKT)
	empty := &providers.FetchResult{Entries: nil, RawPayload: []byte(`{"data":[]}`)}

	f.provider.EXPECT().FetchStatistics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(empty, nil).Times(2)
	f.archive.EXPECT().Archive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.canonicalizer.EXPECT().Canonicalize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).Times(2)

	outcome := f.service.RunIngestion(context.Background(), testParams())

	assert.Equal(t, models.RunNoData, outcome.Status)
	assert.True(t, outcome.Status.IsSuccessful())
	assert.Zero(t, outcome.RecordsWritten)
	assert.Empty(t, outcome.Error)
}

func TestRunIngestion_PartialPersistenceStillSucceeds(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, testBoundsWKT)
	ndviResult := &providers.FetchResult{Entries: []*models.RawStatisticsEntry{{}}, RawPayload: []byte(`{}`)}
	empty := &providers.FetchResult{RawPayload: []byte(`{}`)}

	f.provider.EXPECT().FetchStatistics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), models.IndexNDVI).Return(ndviResult, nil)
	f.provider.EXPECT().FetchStatistics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), models.IndexNDWI).Return(empty, nil)
	f.archive.EXPECT().Archive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.canonicalizer.EXPECT().Canonicalize(gomock.Any(), gomock.Any(), models.IndexNDVI, gomock.Any()).
		Return([]*models.RegionStatisticRecord{
			record("2026-08-24", models.IndexNDVI),
			record("2026-08-25", models.IndexNDVI),
			record("2026-08-26", models.IndexNDVI),
		})
	f.canonicalizer.EXPECT().Canonicalize(gomock.Any(), gomock.Any(), models.IndexNDWI, gomock.Any()).Return(nil)

	// The middle date's write fails; the remaining dates must still land.
	f.store.EXPECT().Upsert(gomock.Any(), record("2026-08-24", models.IndexNDVI)).Return(nil)
	f.store.EXPECT().Upsert(gomock.Any(), record("2026-08-25", models.IndexNDVI)).Return(errors.New("disk I/O error"))
	f.store.EXPECT().Upsert(gomock.Any(), record("2026-08-26", models.IndexNDVI)).Return(nil)
	f.archive.EXPECT().Prune(gomock.Any(), gomock.Any()).Return(0, nil)

	outcome := f.service.RunIngestion(context.Background(), testParams())

	assert.Equal(t, models.RunSuccess, outcome.Status)
	assert.Equal(t, 2, outcome.RecordsWritten)
}

func TestRunIngestion_ArchiveFailureDoesNotFailRun(t *testing.T) {
	t.Parallel()

	f := newServiceFixture(t, testBoundsWKT)
	result := &providers.FetchResult{Entries: []*models.RawStatisticsEntry{{}}, RawPayload: []byte(`{}`)}

	f.provider.EXPECT().FetchStatistics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(result, nil).Times(2)
	f.archive.EXPECT().Archive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("disk full")).Times(2)
	f.canonicalizer.EXPECT().Canonicalize(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]*models.RegionStatisticRecord{record("2026-08-25", models.IndexNDVI)}).Times(2)
	f.store.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	f.archive.EXPECT().Prune(gomock.Any(), gomock.Any()).Return(0, errors.New("disk full"))

	outcome := f.service.RunIngestion(context.Background(), testParams())

	assert.Equal(t, models.RunSuccess, outcome.Status)
	assert.Equal(t, 2, outcome.RecordsWritten)
}

// End-to-end shape of a typical run: one valid NDVI bucket, nothing for
// NDWI, one upsert, successful outcome.
func TestRunIngestion_SingleObservationScenario(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	provider := providermocks.NewMockStatisticsProvider(ctrl)
	store := storemocks.NewMockRegionStatisticStore(ctrl)
	archive := storemocks.NewMockRawResponseArchive(ctrl)
	service := ingestors.NewIngestionService(
		provider,
		aggregators.NewDailyCanonicalizer("Sentinel Hub Statistical API"),
		store,
		archive,
		configs.SchedulerConfig{RegionName: "Trnava", SearchBounds: testBoundsWKT},
		configs.FileStorageConfig{RootDir: t.TempDir(), RetentionDays: 30},
	)

	mean, minVal, maxVal, stDev := 0.55, 0.1, 0.9, 0.12
	samples := int64(1000)
	ndviResult := &providers.FetchResult{
		Entries: []*models.RawStatisticsEntry{{
			Timestamp:   time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
			Mean:        &mean,
			Min:         &minVal,
			Max:         &maxVal,
			StdDev:      &stDev,
			SampleCount: &samples,
		}},
		RawPayload: []byte(`{}`),
	}
	ndwiResult := &providers.FetchResult{RawPayload: []byte(`{"data":[]}`)}

	provider.EXPECT().FetchStatistics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), models.IndexNDVI).Return(ndviResult, nil)
	provider.EXPECT().FetchStatistics(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), models.IndexNDWI).Return(ndwiResult, nil)
	archive.EXPECT().Archive(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	store.EXPECT().Upsert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, record *models.RegionStatisticRecord) error {
			assert.Equal(t, "Trnava", record.RegionName)
			assert.Equal(t, "2024-06-01", record.Date)
			assert.Equal(t, models.IndexNDVI, record.IndexType)
			assert.Equal(t, 0.55, *record.Mean)
			assert.Equal(t, int64(1000), *record.SampleCount)
			return nil
		})
	archive.EXPECT().Prune(gomock.Any(), gomock.Any()).Return(0, nil)

	outcome := service.RunIngestion(context.Background(), testParams())

	assert.Equal(t, models.RunSuccess, outcome.Status)
	assert.Equal(t, 1, outcome.RecordsWritten)
}
