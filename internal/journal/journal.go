// Package journal records finisher runs and their step outcomes in a
// local SQLite database. Everything here is best-effort from the
// installer's point of view: a broken journal never fails an install.
package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Statuses recorded for runs and steps.
const (
	StatusStarted   = "started"
	StatusSucceeded = "succeeded"
	StatusFailed    = "failed"
	StatusIgnored   = "ignored" // best-effort step that failed
)

// Journal is a handle to the setup journal database.
type Journal struct {
	conn *sql.DB
	path string
}

// Run is one recorded finisher invocation.
type Run struct {
	ID         int64
	Platform   string
	Status     string
	Error      string
	StartedAt  time.Time
	FinishedAt time.Time // zero while the run is still marked started
}

// StepRecord is one executed step within a run.
type StepRecord struct {
	RunID  int64
	Name   string
	Status string
	Error  string
	At     time.Time
}

// Open opens the journal database at path, creating the file and its
// directory as needed.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA foreign_keys=ON",
	}
	for _, pragma := range pragmas {
		if _, err := conn.Exec(pragma); err != nil {
			conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	j := &Journal{conn: conn, path: path}
	if err := j.initSchema(); err != nil {
		conn.Close()
		return nil, err
	}
	return j, nil
}

func (j *Journal) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		platform TEXT NOT NULL,
		status TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		started_at INTEGER NOT NULL,
		finished_at INTEGER
	);

	CREATE TABLE IF NOT EXISTS steps (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id INTEGER NOT NULL REFERENCES runs(id),
		name TEXT NOT NULL,
		status TEXT NOT NULL,
		error TEXT NOT NULL DEFAULT '',
		at INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_steps_run ON steps(run_id);
	`

	if _, err := j.conn.Exec(schema); err != nil {
		return fmt.Errorf("failed to create journal schema: %w", err)
	}
	return nil
}

// BeginRun inserts a new run in the started state and returns its id.
func (j *Journal) BeginRun(platform string) (int64, error) {
	res, err := j.conn.Exec(
		`INSERT INTO runs (platform, status, started_at) VALUES (?, ?, ?)`,
		platform, StatusStarted, time.Now().Unix())
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// RecordStep appends a step outcome to the given run.
func (j *Journal) RecordStep(runID int64, name, status, errText string) error {
	_, err := j.conn.Exec(
		`INSERT INTO steps (run_id, name, status, error, at) VALUES (?, ?, ?, ?, ?)`,
		runID, name, status, errText, time.Now().Unix())
	return err
}

// FinishRun marks the run as finished with the given status.
func (j *Journal) FinishRun(runID int64, status, errText string) error {
	_, err := j.conn.Exec(
		`UPDATE runs SET status = ?, error = ?, finished_at = ? WHERE id = ?`,
		status, errText, time.Now().Unix(), runID)
	return err
}

// RecentRuns returns up to limit runs, newest first.
func (j *Journal) RecentRuns(limit int) ([]Run, error) {
	rows, err := j.conn.Query(
		`SELECT id, platform, status, error, started_at, finished_at
		 FROM runs ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var started int64
		var finished sql.NullInt64
		if err := rows.Scan(&r.ID, &r.Platform, &r.Status, &r.Error, &started, &finished); err != nil {
			return nil, err
		}
		r.StartedAt = time.Unix(started, 0)
		if finished.Valid {
			r.FinishedAt = time.Unix(finished.Int64, 0)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// RunSteps returns the steps recorded for a run, in execution order.
func (j *Journal) RunSteps(runID int64) ([]StepRecord, error) {
	rows, err := j.conn.Query(
		`SELECT run_id, name, status, error, at FROM steps WHERE run_id = ? ORDER BY id`, runID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var steps []StepRecord
	for rows.Next() {
		var s StepRecord
		var at int64
		if err := rows.Scan(&s.RunID, &s.Name, &s.Status, &s.Error, &at); err != nil {
			return nil, err
		}
		s.At = time.Unix(at, 0)
		steps = append(steps, s)
	}
	return steps, rows.Err()
}

// Path returns the journal database file path.
func (j *Journal) Path() string {
	return j.path
}

// Close closes the underlying database.
func (j *Journal) Close() error {
	if j.conn != nil {
		return j.conn.Close()
	}
	return nil
}
