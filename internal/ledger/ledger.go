// Copyright Martin Halsall, 2026. All rights reserved.

// Package ledger persists batch run history in a SQLite database. The
// ledger is opt-in: the default batch behavior keeps no cross-run state.
package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// FileStatus records the outcome of one file within a run.
type FileStatus string

const (
	StatusExtracted FileStatus = "extracted"
	StatusFailed    FileStatus = "failed"
)

// FileRecord is the per-file outcome of a batch run.
type FileRecord struct {
	Name   string
	Status FileStatus
	Error  string
}

// RunRecord is one batch run: its parameters, counts, and per-file outcomes.
type RunRecord struct {
	ID        int64
	Vendor    string
	InputDir  string
	OutputCSV string
	StartedAt time.Time
	Extracted int
	Failed    int
	Files     []FileRecord
}

// Store manages the run ledger SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the ledger database at path, creating the schema if
// it does not exist.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening ledger %s: %w", path, err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating ledger schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			vendor TEXT NOT NULL,
			input_dir TEXT NOT NULL,
			output_csv TEXT NOT NULL,
			started_at TEXT NOT NULL,
			extracted INTEGER NOT NULL,
			failed INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS run_files (
			run_id INTEGER NOT NULL REFERENCES runs(id),
			name TEXT NOT NULL,
			status TEXT NOT NULL,
			error TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_run_files_run_id ON run_files(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// RecordRun inserts a completed run and its per-file outcomes. It returns
// the assigned run ID.
func (s *Store) RecordRun(ctx context.Context, rec RunRecord) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO runs (vendor, input_dir, output_csv, started_at, extracted, failed)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		rec.Vendor, rec.InputDir, rec.OutputCSV,
		rec.StartedAt.UTC().Format(time.RFC3339), rec.Extracted, rec.Failed,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting run: %w", err)
	}

	runID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading run ID: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO run_files (run_id, name, status, error) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing file insert: %w", err)
	}
	defer stmt.Close()

	for _, f := range rec.Files {
		if _, err := stmt.ExecContext(ctx, runID, f.Name, string(f.Status), f.Error); err != nil {
			return 0, fmt.Errorf("inserting file record %s: %w", f.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing run: %w", err)
	}
	return runID, nil
}

// Runs lists all recorded runs, most recent first, without per-file detail.
func (s *Store) Runs(ctx context.Context) ([]RunRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, vendor, input_dir, output_csv, started_at, extracted, failed
		 FROM runs ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var rec RunRecord
		var startedAt string
		if err := rows.Scan(&rec.ID, &rec.Vendor, &rec.InputDir, &rec.OutputCSV,
			&startedAt, &rec.Extracted, &rec.Failed); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}
		rec.StartedAt = parseStartedAt(startedAt)
		runs = append(runs, rec)
	}
	return runs, rows.Err()
}

// RunFiles lists the per-file outcomes of one run in insertion order.
func (s *Store) RunFiles(ctx context.Context, runID int64) ([]FileRecord, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, status, error FROM run_files WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying files for run %d: %w", runID, err)
	}
	defer rows.Close()

	var files []FileRecord
	for rows.Next() {
		var f FileRecord
		var status, errMsg sql.NullString
		if err := rows.Scan(&f.Name, &status, &errMsg); err != nil {
			return nil, fmt.Errorf("scanning file record: %w", err)
		}
		f.Status = FileStatus(status.String)
		f.Error = errMsg.String
		files = append(files, f)
	}
	return files, rows.Err()
}

// parseStartedAt parses an RFC 3339 timestamp, returning the zero time for
// malformed values.
func parseStartedAt(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
