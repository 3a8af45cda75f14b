package stores

import (
	"context"
	"database/sql"
	"fmt"

	"region-analytics/internal/models"
)

//go:generate mockgen -source=region_statistic_store.go -destination=./mocks/region_statistic_store_mock.go -package=mocks
type RegionStatisticStore interface {
	// Upsert writes one canonical record, overwriting any existing row with
	// the same (region_name, date, index_type) natural key.
	Upsert(ctx context.Context, record *models.RegionStatisticRecord) error
	// GetByDateAndIndex returns stored records for one calendar date and
	// index type, optionally filtered by region name, ordered by region.
	GetByDateAndIndex(ctx context.Context, date string, indexType models.IndexType, regionName string) ([]*models.RegionStatisticRecord, error)
	// ListAvailableDates returns the distinct dates with stored records,
	// newest first, optionally filtered by index type and region.
	ListAvailableDates(ctx context.Context, indexType models.IndexType, regionName string) ([]string, error)
	// CountByNaturalKey reports how many rows exist for a natural key.
	// The unique constraint keeps this at 0 or 1; it exists for tests and
	// consistency checks.
	CountByNaturalKey(ctx context.Context, regionName, date string, indexType models.IndexType) (int, error)
}

type regionStatisticStore struct {
	db *sql.DB
}

func NewRegionStatisticStore(db *sql.DB) RegionStatisticStore {
	return &regionStatisticStore{db: db}
}

func (s *regionStatisticStore) Upsert(ctx context.Context, record *models.RegionStatisticRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO region_statistics
			(region_name, date, index_type, mean, min, max, std_dev, sample_count, bounds_wkt, provider)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(region_name, date, index_type) DO UPDATE SET
			mean         = excluded.mean,
			min          = excluded.min,
			max          = excluded.max,
			std_dev      = excluded.std_dev,
			sample_count = excluded.sample_count,
			bounds_wkt   = excluded.bounds_wkt,
			provider     = excluded.provider,
			updated_at   = strftime('%Y-%m-%dT%H:%M:%fZ', 'now')`,
		record.RegionName, record.Date, string(record.IndexType),
		record.Mean, record.Min, record.Max, record.StdDev, record.SampleCount,
		record.BoundsWKT, record.ProviderLabel,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert region statistic %s/%s/%s: %w",
			record.RegionName, record.Date, record.IndexType, err)
	}
	return nil
}

func (s *regionStatisticStore) GetByDateAndIndex(ctx context.Context, date string, indexType models.IndexType, regionName string) ([]*models.RegionStatisticRecord, error) {
	query := `
		SELECT region_name, date, index_type, mean, min, max, std_dev, sample_count, bounds_wkt, provider
		FROM region_statistics
		WHERE date = ? AND index_type = ?`
	args := []any{date, string(indexType)}
	if regionName != "" {
		query += " AND region_name = ?"
		args = append(args, regionName)
	}
	query += " ORDER BY region_name"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query region statistics: %w", err)
	}
	defer rows.Close()

	var records []*models.RegionStatisticRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (s *regionStatisticStore) ListAvailableDates(ctx context.Context, indexType models.IndexType, regionName string) ([]string, error) {
	query := "SELECT DISTINCT date FROM region_statistics"
	var conds []string
	var args []any
	if indexType != "" {
		conds = append(conds, "index_type = ?")
		args = append(args, string(indexType))
	}
	if regionName != "" {
		conds = append(conds, "region_name = ?")
		args = append(args, regionName)
	}
	for i, cond := range conds {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY date DESC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query available dates: %w", err)
	}
	defer rows.Close()

	var dates []string
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("failed to scan date: %w", err)
		}
		dates = append(dates, date)
	}
	return dates, rows.Err()
}

func (s *regionStatisticStore) CountByNaturalKey(ctx context.Context, regionName, date string, indexType models.IndexType) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM region_statistics WHERE region_name = ? AND date = ? AND index_type = ?",
		regionName, date, string(indexType),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count region statistics: %w", err)
	}
	return count, nil
}

func scanRecord(rows *sql.Rows) (*models.RegionStatisticRecord, error) {
	var record models.RegionStatisticRecord
	var indexType string
	err := rows.Scan(&record.RegionName, &record.Date, &indexType,
		&record.Mean, &record.Min, &record.Max, &record.StdDev, &record.SampleCount,
		&record.BoundsWKT, &record.ProviderLabel)
	if err != nil {
		return nil, fmt.Errorf("failed to scan region statistic: %w", err)
	}
	record.IndexType = models.IndexType(indexType)
	return &record, nil
}
