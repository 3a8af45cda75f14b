package stores

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"region-analytics/internal/models"
	"region-analytics/internal/shared/filestorages"
)

//go:generate mockgen -source=raw_response_archive.go -destination=./mocks/raw_response_archive_mock.go -package=mocks
type RawResponseArchive interface {
	// Archive stores one raw provider payload for a run. Keys embed the run
	// ID so overlapping ingestions of the same window never collide.
	Archive(ctx context.Context, runID string, indexType models.IndexType, payload []byte) error
	// Prune removes archived payloads older than the retention cutoff.
	Prune(ctx context.Context, olderThan time.Time) (int, error)
}

type rawResponseArchive struct {
	fileStorage filestorages.FileStorage
	dir         string
}

func NewRawResponseArchive(fileStorage filestorages.FileStorage) RawResponseArchive {
	return &rawResponseArchive{fileStorage: fileStorage, dir: "raw-responses"}
}

func (a *rawResponseArchive) Archive(ctx context.Context, runID string, indexType models.IndexType, payload []byte) error {
	key := a.getKey(runID, indexType)
	_, err := a.fileStorage.Put(ctx, key, bytes.NewReader(payload), filestorages.PutOptions{AllowOverwrite: true})
	if err != nil {
		return fmt.Errorf("failed to archive raw response: %w", err)
	}
	return nil
}

func (a *rawResponseArchive) Prune(ctx context.Context, olderThan time.Time) (int, error) {
	keys, err := a.fileStorage.List(ctx, a.dir)
	if err != nil {
		return 0, fmt.Errorf("failed to list archived responses: %w", err)
	}

	removed := 0
	for _, key := range keys {
		archivedAt, ok := a.parseKeyDate(key)
		if !ok || !archivedAt.Before(olderThan) {
			continue
		}
		if err := a.fileStorage.Delete(ctx, key); err != nil {
			return removed, fmt.Errorf("failed to prune %q: %w", key, err)
		}
		removed++
	}
	return removed, nil
}

// getKey builds "raw-responses/<date>/<index>-<runID>.json"; the date
// component is what Prune ages out on.
func (a *rawResponseArchive) getKey(runID string, indexType models.IndexType) string {
	return fmt.Sprintf("%s/%s/%s-%s.json",
		a.dir, time.Now().UTC().Format("2006-01-02"), strings.ToLower(indexType.String()), runID)
}

func (a *rawResponseArchive) parseKeyDate(key string) (time.Time, bool) {
	parts := strings.Split(key, "/")
	if len(parts) < 3 {
		return time.Time{}, false
	}
	archivedAt, err := time.Parse("2006-01-02", parts[1])
	if err != nil {
		return time.Time{}, false
	}
	return archivedAt, true
}
