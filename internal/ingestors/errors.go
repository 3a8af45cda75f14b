package ingestors

import (
	"fmt"

	"region-analytics/internal/models"
	"region-analytics/internal/shared/svcerrors"
)

// IngestionService errors. ING_1xxx codes are configuration defects that
// persist until a redeploy fixes them; ING_9xxx codes are transient and
// retried naturally by the next scheduled tick.
const (
	codeConfigBoundsInvalid = "ING_1100"

	codeInternalProviderFetchFailed = "ING_9100"
	codeInternalStoreUpsertFailed   = "ING_9101"
)

// errConfigBoundsInvalid returns an error when the configured search bounds
// WKT cannot be parsed.
func errConfigBoundsInvalid(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeConfigBoundsInvalid, fmt.Errorf("searchBoundsInvalid: %w", cause))
}

// errProviderFetchFailed returns an error when a statistics provider fetch fails.
func errProviderFetchFailed(indexType models.IndexType, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalProviderFetchFailed, fmt.Errorf("providerFetchFailed (%s): %w", indexType, cause))
}

// errStoreUpsertFailed returns an error when a region statistic upsert fails.
func errStoreUpsertFailed(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInternalError(codeInternalStoreUpsertFailed, fmt.Errorf("regionStatisticStoreFailed: %w", cause))
}
