// Package catalog records asset generation runs in a SQLite database so the
// CLI can show what was produced, when, and with what digests.
package catalog

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Sparajuli7/myayai/internal/paths"

	_ "modernc.org/sqlite"
)

// Store wraps the catalog database.
type Store struct {
	db   *sql.DB
	path string
}

// Run is one recorded generation run.
type Run struct {
	ID       int64
	Time     time.Time
	Root     string
	Filter   string // comma-joined kind filter, empty for a full run
	Assets   int
	Duration time.Duration
}

// AssetRow is one file written during a run.
type AssetRow struct {
	Kind   string
	Name   string
	Rel    string
	Width  int
	Height int
	Bytes  int
	SHA256 string
}

// DefaultPath returns the catalog location in the user data directory.
func DefaultPath() string {
	return filepath.Join(paths.DataDir(), paths.CatalogFileName)
}

// Open opens (or creates) the catalog at path and creates tables and
// indexes.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), paths.DirPerm); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	// Set PRAGMAs before any DDL.
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys=ON",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("sqlite pragma: %w", err)
		}
	}

	ddl := `
CREATE TABLE IF NOT EXISTS runs (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    timestamp   TEXT    NOT NULL,
    root        TEXT    NOT NULL DEFAULT '',
    filter      TEXT    NOT NULL DEFAULT '',
    asset_count INTEGER NOT NULL DEFAULT 0,
    duration_ms INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS run_assets (
    id       INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id   INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
    kind     TEXT    NOT NULL,
    name     TEXT    NOT NULL,
    rel_path TEXT    NOT NULL,
    width    INTEGER NOT NULL,
    height   INTEGER NOT NULL,
    bytes    INTEGER NOT NULL,
    sha256   TEXT    NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON runs(timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_run_assets_run ON run_assets(run_id);
`
	if _, err := db.Exec(ddl); err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordRun inserts a run and its asset rows in one transaction, returning
// the new run ID.
func (s *Store) RecordRun(ts time.Time, root, filter string, d time.Duration, rows []AssetRow) (int64, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO runs (timestamp, root, filter, asset_count, duration_ms)
		 VALUES (?, ?, ?, ?, ?)`,
		ts.Format(time.RFC3339), root, filter, len(rows), d.Milliseconds(),
	)
	if err != nil {
		return 0, err
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, r := range rows {
		if _, err := tx.Exec(
			`INSERT INTO run_assets (run_id, kind, name, rel_path, width, height, bytes, sha256)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			runID, r.Kind, r.Name, r.Rel, r.Width, r.Height, r.Bytes, r.SHA256,
		); err != nil {
			return 0, err
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return runID, nil
}

// Runs returns recorded runs, newest first. limit <= 0 returns all.
func (s *Store) Runs(limit int) ([]Run, error) {
	query := `SELECT id, timestamp, root, filter, asset_count, duration_ms
		FROM runs ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var tsStr string
		var durMS int64
		if err := rows.Scan(&r.ID, &tsStr, &r.Root, &r.Filter, &r.Assets, &durMS); err != nil {
			return nil, err
		}
		ts, err := time.Parse(time.RFC3339, tsStr)
		if err != nil {
			continue
		}
		r.Time = ts
		r.Duration = time.Duration(durMS) * time.Millisecond
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunAssets returns the asset rows recorded for a run, in write order.
func (s *Store) RunAssets(runID int64) ([]AssetRow, error) {
	rows, err := s.db.Query(
		`SELECT kind, name, rel_path, width, height, bytes, sha256
		 FROM run_assets WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []AssetRow
	for rows.Next() {
		var a AssetRow
		if err := rows.Scan(&a.Kind, &a.Name, &a.Rel, &a.Width, &a.Height, &a.Bytes, &a.SHA256); err != nil {
			return nil, err
		}
		assets = append(assets, a)
	}
	return assets, rows.Err()
}

// DayCutoff returns midnight days-1 days ago, so Clean(1) keeps today.
func DayCutoff(days int) time.Time {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -(days - 1))
}

// Clean removes runs older than the cutoff, returning the number removed.
// Asset rows follow via ON DELETE CASCADE.
func (s *Store) Clean(days int) (int, error) {
	cutoff := DayCutoff(days).Format(time.RFC3339)
	res, err := s.db.Exec(`DELETE FROM runs WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}

// Clear deletes all recorded runs.
func (s *Store) Clear() error {
	_, err := s.db.Exec(`DELETE FROM runs`)
	return err
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}
