package ingestors

import (
	"context"
	"time"

	"region-analytics/internal/aggregators"
	"region-analytics/internal/models"
	"region-analytics/internal/providers"
	"region-analytics/internal/shared/configs"
	"region-analytics/internal/shared/loggers"
	"region-analytics/internal/shared/svcerrors"
	"region-analytics/internal/stores"
)

// RunParams identifies one ingestion run and its time window.
type RunParams struct {
	RunID   string
	Trigger string
	From    time.Time
	To      time.Time
}

//go:generate mockgen -source=ingestion_service.go -destination=./mocks/ingestion_service_mock.go -package=mocks
type IngestionService interface {
	// RunIngestion executes one acquisition run: parse bounds, fetch each
	// tracked index type, canonicalize, upsert. It never returns an error;
	// every failure mode is folded into the outcome so the caller's loop
	// stays error-proof.
	RunIngestion(ctx context.Context, params RunParams) *models.RunOutcome
}

type ingestionService struct {
	provider      providers.StatisticsProvider
	canonicalizer aggregators.DailyCanonicalizer
	store         stores.RegionStatisticStore
	archive       stores.RawResponseArchive

	regionName       string
	searchBounds     string
	archiveRetention time.Duration
}

func NewIngestionService(
	provider providers.StatisticsProvider,
	canonicalizer aggregators.DailyCanonicalizer,
	store stores.RegionStatisticStore,
	archive stores.RawResponseArchive,
	schedulerCfg configs.SchedulerConfig,
	storageCfg configs.FileStorageConfig,
) IngestionService {
	return &ingestionService{
		provider:         provider,
		canonicalizer:    canonicalizer,
		store:            store,
		archive:          archive,
		regionName:       schedulerCfg.RegionName,
		searchBounds:     schedulerCfg.SearchBounds,
		archiveRetention: time.Duration(storageCfg.RetentionDays) * 24 * time.Hour,
	}
}

func (s *ingestionService) RunIngestion(ctx context.Context, params RunParams) *models.RunOutcome {
	logger := loggers.Ctx(ctx)
	startedAt := time.Now().UTC()
	outcome := &models.RunOutcome{
		RunID:     params.RunID,
		Trigger:   params.Trigger,
		StartedAt: startedAt,
	}

	logger.Info().
		Time("window_from", params.From).
		Time("window_to", params.To).
		Msg("starting ingestion run")

	// A malformed boundary is a configuration defect, not a transient error.
	// It fails fast with a distinct code so it is alertable: it will fail
	// every tick until the configuration is corrected.
	bbox, err := models.ParseWKTBounds(s.searchBounds)
	if err != nil {
		svcErr := errConfigBoundsInvalid(err)
		logger.Error().Err(svcErr.Cause).Str(loggers.FieldErrorCode, svcErr.Code).
			Msg("search bounds unparseable, run aborted")
		outcome.Status = models.RunFailure
		outcome.Error = svcErr.Error()
		return outcome
	}

	records, fetchedAny, warnings, fetchErr := s.fetchAndCanonicalize(ctx, params, bbox)
	if !fetchedAny {
		logger.Error().Err(fetchErr.Cause).Str(loggers.FieldErrorCode, fetchErr.Code).
			Msg("all provider fetches failed, run aborted")
		outcome.Status = models.RunFailure
		outcome.Error = fetchErr.Error()
		return outcome
	}
	// Isolated fetch failures do not fail the run, but operators should see
	// them in the outcome rather than only in the logs.
	outcome.Warnings = warnings

	if len(records) == 0 {
		logger.Info().Msg("no data found for this interval")
		outcome.Status = models.RunNoData
		return outcome
	}

	outcome.RecordsWritten = s.persistRecords(ctx, records)
	outcome.Status = models.RunSuccess

	s.pruneArchive(ctx, startedAt)

	logger.Info().
		Int("canonical_records", len(records)).
		Int("records_written", outcome.RecordsWritten).
		Msg("ingestion run completed")
	return outcome
}

// fetchAndCanonicalize queries the provider for each tracked index type in
// stable order. Per-index failures are isolated: one index type's provider
// error never aborts the other's processing, it is reported back as a
// warning instead. fetchedAny is false only when every fetch failed, which
// fails the whole run.
func (s *ingestionService) fetchAndCanonicalize(ctx context.Context, params RunParams, bbox models.BBox) (records []*models.RegionStatisticRecord, fetchedAny bool, warnings []string, lastErr *svcerrors.ServiceError) {
	logger := loggers.Ctx(ctx)
	boundsWKT := bbox.PolygonWKT()

	for _, indexType := range models.TrackedIndexTypes() {
		result, err := s.provider.FetchStatistics(ctx, bbox, params.From, params.To, indexType)
		if err != nil {
			lastErr = errProviderFetchFailed(indexType, err)
			logger.Error().Err(err).
				Str(loggers.FieldIndexType, indexType.String()).
				Str(loggers.FieldErrorCode, lastErr.Code).
				Msg("provider fetch failed for index type")
			metricFetchFailuresTotal.WithLabelValues(indexType.String()).Inc()
			warnings = append(warnings, lastErr.Error())
			continue
		}
		fetchedAny = true

		s.archiveRaw(ctx, params.RunID, indexType, result.RawPayload)

		canonical := s.canonicalizer.Canonicalize(s.regionName, boundsWKT, indexType, result.Entries)
		logger.Debug().
			Str(loggers.FieldIndexType, indexType.String()).
			Int("raw_entries", len(result.Entries)).
			Int("canonical_records", len(canonical)).
			Msg("canonicalized provider entries")
		records = append(records, canonical...)
	}
	return records, fetchedAny, warnings, lastErr
}

// persistRecords upserts records in their deterministic order. A single
// date's failure is logged and skipped; remaining dates continue, and the
// written count reflects only successful upserts.
func (s *ingestionService) persistRecords(ctx context.Context, records []*models.RegionStatisticRecord) int {
	logger := loggers.Ctx(ctx)
	written := 0
	for _, record := range records {
		if err := s.store.Upsert(ctx, record); err != nil {
			svcErr := errStoreUpsertFailed(err)
			logger.Error().Err(err).
				Str(loggers.FieldErrorCode, svcErr.Code).
				Str(loggers.FieldRegion, record.RegionName).
				Str(loggers.FieldDate, record.Date).
				Str(loggers.FieldIndexType, record.IndexType.String()).
				Msg("failed to persist canonical record")
			metricUpsertFailuresTotal.WithLabelValues(record.IndexType.String()).Inc()
			continue
		}
		written++
		metricRecordsWrittenTotal.WithLabelValues(record.IndexType.String()).Inc()
	}
	return written
}

// archiveRaw stores the verbatim provider payload for audit. Best effort:
// an archive failure must never fail the run.
func (s *ingestionService) archiveRaw(ctx context.Context, runID string, indexType models.IndexType, payload []byte) {
	if err := s.archive.Archive(ctx, runID, indexType, payload); err != nil {
		loggers.Ctx(ctx).Warn().Err(err).
			Str(loggers.FieldIndexType, indexType.String()).
			Msg("failed to archive raw provider response")
	}
}

func (s *ingestionService) pruneArchive(ctx context.Context, now time.Time) {
	removed, err := s.archive.Prune(ctx, now.Add(-s.archiveRetention))
	if err != nil {
		loggers.Ctx(ctx).Warn().Err(err).Msg("failed to prune raw response archive")
		return
	}
	if removed > 0 {
		loggers.Ctx(ctx).Debug().Int("removed", removed).Msg("pruned raw response archive")
	}
}
