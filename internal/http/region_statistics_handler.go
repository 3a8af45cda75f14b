package http

import (
	"net/http"
	"time"

	"region-analytics/internal/models"
	"region-analytics/internal/stores"
)

type regionStatisticsHandler struct {
	statisticStore stores.RegionStatisticStore
}

func NewRegionStatisticsHandler(statisticStore stores.RegionStatisticStore) AppHttpHandler {
	return &regionStatisticsHandler{
		statisticStore: statisticStore,
	}
}

// Handle processes GET /statistics/region requests. It returns a GeoJSON
// FeatureCollection of the stored statistics for one date and index type,
// optionally narrowed to a single region.
func (h *regionStatisticsHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	date, err := queryDate(r)
	if err != nil {
		return err
	}
	indexType, err := queryIndexType(r, true)
	if err != nil {
		return err
	}
	region := queryRegion(r)

	records, err := h.statisticStore.GetByDateAndIndex(r.Context(), date, indexType, region)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		return errStatisticsNotFound(date, indexType)
	}

	return writeJSON(w, http.StatusOK, models.NewFeatureCollection(records))
}

// AvailableDatesResponse lists the dates for which statistics exist,
// newest first.
type AvailableDatesResponse struct {
	Dates []string `json:"dates"`
	Count int      `json:"count"`
}

type availableDatesHandler struct {
	statisticStore stores.RegionStatisticStore
}

func NewAvailableDatesHandler(statisticStore stores.RegionStatisticStore) AppHttpHandler {
	return &availableDatesHandler{
		statisticStore: statisticStore,
	}
}

// Handle processes GET /statistics/region/dates requests.
func (h *availableDatesHandler) Handle(w http.ResponseWriter, r *http.Request) error {
	indexType, err := queryIndexType(r, false)
	if err != nil {
		return err
	}
	region := queryRegion(r)

	dates, err := h.statisticStore.ListAvailableDates(r.Context(), indexType, region)
	if err != nil {
		return err
	}

	if dates == nil {
		dates = []string{}
	}
	return writeJSON(w, http.StatusOK, AvailableDatesResponse{
		Dates: dates,
		Count: len(dates),
	})
}

func queryDate(r *http.Request) (string, error) {
	date := r.URL.Query().Get("date")
	if date == "" {
		return "", errMissingDateParam()
	}
	if _, err := time.Parse("2006-01-02", date); err != nil {
		return "", errInvalidDateParam(date, err)
	}
	return date, nil
}

// queryIndexType parses the index query parameter. When required is false an
// absent parameter means "all index types".
func queryIndexType(r *http.Request, required bool) (models.IndexType, error) {
	raw := r.URL.Query().Get("index")
	if raw == "" {
		if required {
			return "", errMissingIndexParam()
		}
		return "", nil
	}
	indexType, ok := models.ParseIndexType(raw)
	if !ok {
		return "", errInvalidIndexParam(raw)
	}
	return indexType, nil
}

func queryRegion(r *http.Request) string {
	return r.URL.Query().Get("region")
}
