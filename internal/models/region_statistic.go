package models

import "time"

// RawStatisticsEntry is one aggregation bucket as returned by the statistics
// provider. It is never persisted directly; entries always pass through the
// daily canonicalizer first.
type RawStatisticsEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Mean        *float64  `json:"mean"`
	Min         *float64  `json:"min"`
	Max         *float64  `json:"max"`
	StdDev      *float64  `json:"stDev"`
	SampleCount *int64    `json:"sampleCount"`
}

// HasSamples reports whether the entry carries at least one valid pixel.
// A bucket with zero (or unknown) samples carries no information.
func (e *RawStatisticsEntry) HasSamples() bool {
	return e.SampleCount != nil && *e.SampleCount > 0
}

// RegionStatisticRecord is the canonical persisted unit: exactly one row per
// (region_name, date, index_type). Statistic fields are pointers because a
// valid bucket may still lack individual aggregates.
type RegionStatisticRecord struct {
	RegionName    string    `json:"regionName"`
	Date          string    `json:"date"` // YYYY-MM-DD, UTC calendar date
	IndexType     IndexType `json:"indexType"`
	Mean          *float64  `json:"mean"`
	Min           *float64  `json:"min"`
	Max           *float64  `json:"max"`
	StdDev        *float64  `json:"stdDev"`
	SampleCount   *int64    `json:"sampleCount"`
	BoundsWKT     string    `json:"boundsWkt"`
	ProviderLabel string    `json:"provider"`
}

// DateOf formats the UTC calendar date of t the way records store it.
func DateOf(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
