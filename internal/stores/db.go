package stores

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// OpenDB creates the directory, opens the SQLite database, sets WAL mode and
// pragmas, and ensures the schema exists.
func OpenDB(path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// In WAL mode SQLite supports concurrent readers with a single writer.
	// The scheduler is the only writer; API reads must not block behind it.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return db, nil
}

func createSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS region_statistics (
			region_name  TEXT NOT NULL,
			date         TEXT NOT NULL,
			index_type   TEXT NOT NULL,
			mean         REAL,
			min          REAL,
			max          REAL,
			std_dev      REAL,
			sample_count INTEGER,
			bounds_wkt   TEXT NOT NULL,
			provider     TEXT NOT NULL,
			updated_at   TEXT NOT NULL DEFAULT (strftime('%Y-%m-%dT%H:%M:%fZ', 'now')),
			PRIMARY KEY (region_name, date, index_type)
		)`)
	return err
}
