package http

import (
	"fmt"

	"region-analytics/internal/models"
	"region-analytics/internal/shared/svcerrors"
)

const (
	codeMissingDateParam   = "STA_1000"
	codeInvalidDateParam   = "STA_1001"
	codeMissingIndexParam  = "STA_1002"
	codeInvalidIndexParam  = "STA_1003"
	codeInvalidTriggerBody = "STA_1004"
	codeInvalidDaysBack    = "STA_1005"
	codeStatisticsNotFound = "STA_2000"
)

func errMissingDateParam() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingDateParam, "query parameter 'date' is required", nil)
}

func errInvalidDateParam(date string, cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDateParam,
		fmt.Sprintf("query parameter 'date' must be formatted YYYY-MM-DD, got %q", date), cause)
}

func errMissingIndexParam() *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeMissingIndexParam, "query parameter 'index' is required", nil)
}

func errInvalidIndexParam(index string) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidIndexParam,
		fmt.Sprintf("unknown index type %q", index), nil)
}

func errInvalidTriggerBody(cause error) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidTriggerBody, "request body must be a JSON object", cause)
}

func errInvalidDaysBack(daysBack int) *svcerrors.ServiceError {
	return svcerrors.NewInvalidArgumentError(codeInvalidDaysBack,
		fmt.Sprintf("daysBack must not be negative, got %d", daysBack), nil)
}

func errStatisticsNotFound(date string, indexType models.IndexType) *svcerrors.ServiceError {
	return svcerrors.NewNotFoundError(codeStatisticsNotFound,
		fmt.Sprintf("no %s statistics stored for %s", indexType, date), nil)
}
