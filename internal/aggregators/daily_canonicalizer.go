package aggregators

import (
	"sort"

	"region-analytics/internal/models"
)

//go:generate mockgen -source=daily_canonicalizer.go -destination=./mocks/daily_canonicalizer_mock.go -package=mocks
type DailyCanonicalizer interface {
	// Canonicalize collapses raw provider entries into exactly one record
	// per UTC calendar date, sorted by date ascending.
	Canonicalize(regionName string, boundsWKT string, indexType models.IndexType, entries []*models.RawStatisticsEntry) []*models.RegionStatisticRecord
}

type dailyCanonicalizer struct {
	providerLabel string
}

func NewDailyCanonicalizer(providerLabel string) DailyCanonicalizer {
	return &dailyCanonicalizer{providerLabel: providerLabel}
}

// Canonicalize groups entries by calendar date and picks one representative
// entry per date. Overlapping orbit passes can produce several buckets for
// the same day; the entry with the most valid pixels wins, with the earlier
// timestamp breaking exact ties. The winner's aggregates are carried through
// unchanged: same-day passes are picked, never blended.
func (c *dailyCanonicalizer) Canonicalize(regionName string, boundsWKT string, indexType models.IndexType, entries []*models.RawStatisticsEntry) []*models.RegionStatisticRecord {
	selected := make(map[string]*models.RawStatisticsEntry)
	for _, entry := range entries {
		// A zero-sample bucket carries no information and must not produce
		// a record of nulls.
		if !entry.HasSamples() {
			continue
		}
		date := models.DateOf(entry.Timestamp)
		current, exists := selected[date]
		if !exists || c.prefer(entry, current) {
			selected[date] = entry
		}
	}

	dates := make([]string, 0, len(selected))
	for date := range selected {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	metricCanonicalRecordsTotal.WithLabelValues(indexType.String()).Add(float64(len(dates)))

	records := make([]*models.RegionStatisticRecord, 0, len(dates))
	for _, date := range dates {
		entry := selected[date]
		records = append(records, &models.RegionStatisticRecord{
			RegionName:    regionName,
			Date:          date,
			IndexType:     indexType,
			Mean:          entry.Mean,
			Min:           entry.Min,
			Max:           entry.Max,
			StdDev:        entry.StdDev,
			SampleCount:   entry.SampleCount,
			BoundsWKT:     boundsWKT,
			ProviderLabel: c.providerLabel,
		})
	}
	return records
}

// prefer reports whether candidate should replace current for the same date.
// More pixels means more representative; equal counts fall back to the
// earliest timestamp so the choice never depends on input order.
func (c *dailyCanonicalizer) prefer(candidate, current *models.RawStatisticsEntry) bool {
	if *candidate.SampleCount != *current.SampleCount {
		return *candidate.SampleCount > *current.SampleCount
	}
	return candidate.Timestamp.Before(current.Timestamp)
}
