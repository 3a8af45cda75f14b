package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"region-analytics/internal/models"
	"region-analytics/internal/shared/configs"
	"region-analytics/internal/shared/loggers"
)

// ProviderLabel tags every record this client produced.
const ProviderLabel = "Sentinel Hub Statistical API"

const (
	statisticsPath = "/api/v1/statistics"
	dataCollection = "sentinel-2-l2a"

	// Statistical API rejects requests above 2500 output pixels per axis;
	// stay slightly under and coarsen the resolution instead.
	maxPixelsPerAxis = 2400

	metersPerDegree = 111000.0
)

// FetchResult is one index type's provider response: the parsed aggregation
// buckets plus the verbatim payload for archiving.
type FetchResult struct {
	Entries    []*models.RawStatisticsEntry
	RawPayload []byte
}

//go:generate mockgen -source=statistics_provider.go -destination=./mocks/statistics_provider_mock.go -package=mocks
type StatisticsProvider interface {
	// FetchStatistics queries aggregated index statistics for a bounding box
	// over [from, to]. An empty result is not an error; it means no
	// observations exist for the window.
	FetchStatistics(ctx context.Context, bbox models.BBox, from, to time.Time, indexType models.IndexType) (*FetchResult, error)
}

type statisticsClient struct {
	baseURL          string
	authToken        string
	httpClient       *http.Client
	limiter          *rate.Limiter
	resolutionMeters float64
	aggregationISO   string
	maxCloudCoverage float64
}

// NewStatisticsClient builds the Sentinel Hub Statistical API client. The
// auth token is pre-issued; refreshing it is outside this service.
func NewStatisticsClient(cfg configs.ProviderConfig, maxCloudCoverage float64, aggregationISO string) StatisticsProvider {
	return &statisticsClient{
		baseURL:          cfg.BaseURL,
		authToken:        cfg.AuthToken,
		httpClient:       &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		limiter:          rate.NewLimiter(rate.Every(time.Minute/time.Duration(cfg.RequestsPerMin)), 1),
		resolutionMeters: cfg.ResolutionMeter,
		aggregationISO:   aggregationISO,
		maxCloudCoverage: maxCloudCoverage,
	}
}

type statisticsRequest struct {
	Input       requestInput       `json:"input"`
	Aggregation requestAggregation `json:"aggregation"`
}

type requestInput struct {
	Bounds requestBounds `json:"bounds"`
	Data   []requestData `json:"data"`
}

type requestBounds struct {
	BBox [4]float64 `json:"bbox"`
}

type requestData struct {
	Type       string            `json:"type"`
	DataFilter requestDataFilter `json:"dataFilter"`
}

type requestDataFilter struct {
	MaxCloudCoverage float64 `json:"maxCloudCoverage"`
}

type requestAggregation struct {
	TimeRange           requestTimeRange `json:"timeRange"`
	AggregationInterval requestInterval  `json:"aggregationInterval"`
	Evalscript          string           `json:"evalscript"`
	ResX                float64          `json:"resx"`
	ResY                float64          `json:"resy"`
}

type requestTimeRange struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type requestInterval struct {
	Of string `json:"of"`
}

type statisticsResponse struct {
	Data []responseBucket `json:"data"`
}

type responseBucket struct {
	Interval responseInterval          `json:"interval"`
	Outputs  map[string]responseOutput `json:"outputs"`
}

type responseInterval struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type responseOutput struct {
	Bands map[string]responseBand `json:"bands"`
}

type responseBand struct {
	Stats responseStats `json:"stats"`
}

type responseStats struct {
	Min         *float64 `json:"min"`
	Max         *float64 `json:"max"`
	Mean        *float64 `json:"mean"`
	StDev       *float64 `json:"stDev"`
	SampleCount *int64   `json:"sampleCount"`
}

func (c *statisticsClient) FetchStatistics(ctx context.Context, bbox models.BBox, from, to time.Time, indexType models.IndexType) (*FetchResult, error) {
	if c.authToken == "" {
		return nil, fmt.Errorf("provider credentials not configured")
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter wait: %w", err)
	}

	evalscript, output := evalscriptFor(indexType)
	resolution := c.resolutionDegrees(bbox)

	payload := statisticsRequest{
		Input: requestInput{
			Bounds: requestBounds{BBox: bbox.Flat()},
			Data: []requestData{{
				Type:       dataCollection,
				DataFilter: requestDataFilter{MaxCloudCoverage: c.maxCloudCoverage},
			}},
		},
		Aggregation: requestAggregation{
			TimeRange: requestTimeRange{
				From: from.UTC().Format(time.RFC3339),
				To:   to.UTC().Format(time.RFC3339),
			},
			AggregationInterval: requestInterval{Of: c.aggregationISO},
			Evalscript:          evalscript,
			ResX:                resolution,
			ResY:                resolution,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal statistics request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+statisticsPath, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build statistics request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("statistics request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read statistics response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		metricProviderRequestsTotal.WithLabelValues(indexType.String(), fmt.Sprintf("%d", resp.StatusCode)).Inc()
		return nil, fmt.Errorf("statistics request returned status %d: %s", resp.StatusCode, truncate(raw, 256))
	}
	metricProviderRequestsTotal.WithLabelValues(indexType.String(), "200").Inc()

	entries, err := c.parseResponse(ctx, raw, output)
	if err != nil {
		return nil, err
	}
	return &FetchResult{Entries: entries, RawPayload: raw}, nil
}

func (c *statisticsClient) parseResponse(ctx context.Context, raw []byte, output string) ([]*models.RawStatisticsEntry, error) {
	var parsed statisticsResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("failed to decode statistics response: %w", err)
	}

	logger := loggers.Ctx(ctx)
	entries := make([]*models.RawStatisticsEntry, 0, len(parsed.Data))
	for _, bucket := range parsed.Data {
		out, ok := bucket.Outputs[output]
		if !ok || len(out.Bands) == 0 {
			continue
		}

		// The band key is usually the output name; some responses key the
		// single band numerically, take whatever is there.
		band, ok := out.Bands[output]
		if !ok {
			for _, b := range out.Bands {
				band = b
				break
			}
		}

		timestamp, err := time.Parse(time.RFC3339, bucket.Interval.From)
		if err != nil {
			logger.Warn().Str("interval_from", bucket.Interval.From).Msg("skipping bucket with unparseable interval")
			continue
		}

		entries = append(entries, &models.RawStatisticsEntry{
			Timestamp:   timestamp,
			Mean:        band.Stats.Mean,
			Min:         band.Stats.Min,
			Max:         band.Stats.Max,
			StdDev:      band.Stats.StDev,
			SampleCount: band.Stats.SampleCount,
		})
	}
	return entries, nil
}

// resolutionDegrees converts the configured resolution to degrees and
// coarsens it when the bounding box would exceed the provider's output
// pixel limit.
func (c *statisticsClient) resolutionDegrees(bbox models.BBox) float64 {
	resolution := c.resolutionMeters / metersPerDegree

	pixelsX := (bbox.MaxLon - bbox.MinLon) / resolution
	pixelsY := (bbox.MaxLat - bbox.MinLat) / resolution
	if pixelsX > maxPixelsPerAxis || pixelsY > maxPixelsPerAxis {
		scale := max(pixelsX, pixelsY) / maxPixelsPerAxis
		resolution *= scale
	}
	return resolution
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
