// Package chronicle provides SQLite-based journaling of demonstration runs.
// The journal is an observer of the lifecycle operations, never a
// participant: writes are best-effort, and a disabled chronicle (a nil
// Recorder) ignores every call.
package chronicle

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection for run journaling.
type DB struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*DB, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return db, nil
}

// Close closes the database connection. Safe on a nil DB.
func (db *DB) Close() error {
	if db == nil || db.conn == nil {
		return nil
	}
	return db.conn.Close()
}

func (db *DB) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at INTEGER NOT NULL,
		finished_at INTEGER,
		outcome TEXT NOT NULL,
		forecast_days INTEGER
	);

	CREATE TABLE IF NOT EXISTS events (
		run_id TEXT NOT NULL,
		seq INTEGER NOT NULL,
		stage TEXT NOT NULL,
		detail TEXT NOT NULL,
		created_at INTEGER NOT NULL,
		PRIMARY KEY (run_id, seq)
	);

	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`
	_, err := db.conn.Exec(schema)
	return err
}

// Run is one journaled demonstration run.
type Run struct {
	ID           string        `db:"id"`
	StartedAt    int64         `db:"started_at"`
	FinishedAt   sql.NullInt64 `db:"finished_at"`
	Outcome      string        `db:"outcome"`
	ForecastDays sql.NullInt64 `db:"forecast_days"`
}

// Started returns the run's start time.
func (r Run) Started() time.Time {
	return time.Unix(r.StartedAt, 0)
}

// Event is one journaled stage of a run.
type Event struct {
	RunID     string `db:"run_id"`
	Seq       int    `db:"seq"`
	Stage     string `db:"stage"`
	Detail    string `db:"detail"`
	CreatedAt int64  `db:"created_at"`
}

// Created returns the event's record time.
func (e Event) Created() time.Time {
	return time.Unix(e.CreatedAt, 0)
}

// Recorder journals the stages of one run. A nil Recorder ignores every
// call, so callers run unjournaled without guarding each site.
type Recorder struct {
	db    *DB
	runID string
	seq   int
}

// StartRun opens a journal entry for a new run and returns its recorder.
func (db *DB) StartRun() (*Recorder, error) {
	id := uuid.NewString()
	_, err := db.conn.Exec(
		"INSERT INTO runs (id, started_at, outcome) VALUES (?, ?, ?)",
		id, time.Now().UTC().Unix(), "running",
	)
	if err != nil {
		return nil, fmt.Errorf("insert run: %w", err)
	}
	return &Recorder{db: db, runID: id}, nil
}

// RunID returns the run's identifier, or "" on a nil Recorder.
func (r *Recorder) RunID() string {
	if r == nil {
		return ""
	}
	return r.runID
}

// Event appends one stage to the run's journal. Failures are logged and
// swallowed: the journal never fails the run it observes.
func (r *Recorder) Event(stage, detail string) {
	if r == nil {
		return
	}
	r.seq++
	_, err := r.db.conn.Exec(
		"INSERT INTO events (run_id, seq, stage, detail, created_at) VALUES (?, ?, ?, ?, ?)",
		r.runID, r.seq, stage, detail, time.Now().UTC().Unix(),
	)
	if err != nil {
		slog.Warn("chronicle event not recorded", "stage", stage, "error", err)
	}
}

// Finish closes the run's journal entry. A negative forecastDays records no
// forecast, for runs that failed before one was computed.
func (r *Recorder) Finish(outcome string, forecastDays int64) {
	if r == nil {
		return
	}
	days := sql.NullInt64{Int64: forecastDays, Valid: forecastDays >= 0}
	_, err := r.db.conn.Exec(
		"UPDATE runs SET finished_at = ?, outcome = ?, forecast_days = ? WHERE id = ?",
		time.Now().UTC().Unix(), outcome, days, r.runID,
	)
	if err != nil {
		slog.Warn("chronicle run not finished", "run", r.runID, "error", err)
	}
}

// RecentRuns returns the latest n runs, newest first.
func (db *DB) RecentRuns(n int) ([]Run, error) {
	var runs []Run
	err := db.conn.Select(&runs,
		"SELECT id, started_at, finished_at, outcome, forecast_days FROM runs ORDER BY started_at DESC, id DESC LIMIT ?",
		n,
	)
	return runs, err
}

// Events returns one run's journal in stage order.
func (db *DB) Events(runID string) ([]Event, error) {
	var events []Event
	err := db.conn.Select(&events,
		"SELECT run_id, seq, stage, detail, created_at FROM events WHERE run_id = ? ORDER BY seq",
		runID,
	)
	return events, err
}
