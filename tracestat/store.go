// File: tracestat/store.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// SQLite persistence of analysed captures. A capture is identified by the
// digest of its raw bytes plus the analysis window, so re-ingesting the same
// capture replaces its rows instead of duplicating them.

package tracestat

import (
	"database/sql"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/momentics/schedbench/api"
)

const schema = `
CREATE TABLE IF NOT EXISTS captures (
	digest       TEXT    NOT NULL,
	window_start INTEGER NOT NULL,
	window_stop  INTEGER NOT NULL,
	lines        INTEGER NOT NULL,
	events       INTEGER NOT NULL,
	PRIMARY KEY (digest, window_start, window_stop)
);
CREATE TABLE IF NOT EXISTS thread_stats (
	digest       TEXT    NOT NULL,
	window_start INTEGER NOT NULL,
	window_stop  INTEGER NOT NULL,
	position     INTEGER NOT NULL,
	name         TEXT    NOT NULL,
	on_cpu_ns    INTEGER NOT NULL,
	share        REAL    NOT NULL,
	slices       INTEGER NOT NULL,
	PRIMARY KEY (digest, window_start, window_stop, position)
);`

// Store persists reports in a SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, api.WrapError(api.ErrCodeTrace, "tracestat: open store", err).WithContext("path", path)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, api.WrapError(api.ErrCodeTrace, "tracestat: create schema", err).WithContext("path", path)
	}
	return &Store{db: db}, nil
}

// Save writes r, replacing any earlier result for the same capture and window.
func (s *Store) Save(r *Report) error {
	tx, err := s.db.Begin()
	if err != nil {
		return api.WrapError(api.ErrCodeTrace, "tracestat: begin", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(
		`INSERT OR REPLACE INTO captures (digest, window_start, window_stop, lines, events) VALUES (?, ?, ?, ?, ?)`,
		r.Digest, int64(r.WindowStart), int64(r.WindowStop), r.Lines, r.Events); err != nil {
		return api.WrapError(api.ErrCodeTrace, "tracestat: save capture", err)
	}
	if _, err := tx.Exec(
		`DELETE FROM thread_stats WHERE digest = ? AND window_start = ? AND window_stop = ?`,
		r.Digest, int64(r.WindowStart), int64(r.WindowStop)); err != nil {
		return api.WrapError(api.ErrCodeTrace, "tracestat: clear thread stats", err)
	}
	stmt, err := tx.Prepare(
		`INSERT INTO thread_stats (digest, window_start, window_stop, position, name, on_cpu_ns, share, slices)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return api.WrapError(api.ErrCodeTrace, "tracestat: prepare", err)
	}
	defer stmt.Close()
	for i, t := range r.Threads {
		if _, err := stmt.Exec(r.Digest, int64(r.WindowStart), int64(r.WindowStop), i, t.Name, int64(t.OnCPU), t.Share, t.Slices); err != nil {
			return api.WrapError(api.ErrCodeTrace, "tracestat: save thread stat", err).WithContext("name", t.Name)
		}
	}
	if err := tx.Commit(); err != nil {
		return api.WrapError(api.ErrCodeTrace, "tracestat: commit", err)
	}
	return nil
}

// Load returns the stored report for digest and window, or nil if absent.
func (s *Store) Load(digest string, start, stop time.Duration) (*Report, error) {
	r := &Report{Digest: digest, WindowStart: start, WindowStop: stop}
	err := s.db.QueryRow(
		`SELECT lines, events FROM captures WHERE digest = ? AND window_start = ? AND window_stop = ?`,
		digest, int64(start), int64(stop)).Scan(&r.Lines, &r.Events)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, api.WrapError(api.ErrCodeTrace, "tracestat: load capture", err)
	}

	rows, err := s.db.Query(
		`SELECT name, on_cpu_ns, share, slices FROM thread_stats
		 WHERE digest = ? AND window_start = ? AND window_stop = ? ORDER BY position`,
		digest, int64(start), int64(stop))
	if err != nil {
		return nil, api.WrapError(api.ErrCodeTrace, "tracestat: load thread stats", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t ThreadStat
		var ns int64
		if err := rows.Scan(&t.Name, &ns, &t.Share, &t.Slices); err != nil {
			return nil, api.WrapError(api.ErrCodeTrace, "tracestat: scan thread stat", err)
		}
		t.OnCPU = time.Duration(ns)
		r.Threads = append(r.Threads, t)
	}
	if err := rows.Err(); err != nil {
		return nil, api.WrapError(api.ErrCodeTrace, "tracestat: iterate thread stats", err)
	}
	return r, nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
