package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Run is a stored harness invocation.
type Run struct {
	ID        string        `json:"id"`
	StartedAt time.Time     `json:"started_at"`
	Mode      string        `json:"mode"`
	Threads   int           `json:"threads"`
	Passed    int           `json:"passed"`
	Failed    int           `json:"failed"`
	Elapsed   time.Duration `json:"elapsed_ns"`
	Finished  bool          `json:"finished"`
}

// Result is a stored scenario verdict.
type Result struct {
	Seq          int64         `json:"seq"`
	QM           string        `json:"qm"`
	MM           string        `json:"mm"`
	Scenario     string        `json:"scenario"`
	Status       string        `json:"status"`
	Value        float64       `json:"value"`
	Reference    float64       `json:"reference"`
	HasReference bool          `json:"has_reference"`
	Raw          string        `json:"raw"`
	RunTime      string        `json:"run_time"`
	Elapsed      time.Duration `json:"elapsed_ns"`
	Pass         bool          `json:"pass"`
}

// Runs returns the most recent runs, newest first. A limit of zero or less
// returns every run.
//
// Returns an empty slice (not nil) if no runs exist.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, started_at, mode, threads, passed, failed, elapsed_ms, finished
		FROM runs
		ORDER BY started_at DESC, id COLLATE BINARY ASC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}

// ReadRun returns one run by ID.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, started_at, mode, threads, passed, failed, elapsed_ms, finished
		FROM runs
		WHERE id = ?
	`, id)
	run, err := scanRun(row)
	if err != nil {
		return Run{}, fmt.Errorf("read run %q: %w", id, err)
	}
	return run, nil
}

// Results returns a run's results in the order they were produced.
//
// Returns an empty slice (not nil) if the run has no results.
func (s *Store) Results(ctx context.Context, runID string) ([]Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT seq, qm, mm, scenario, status, value, reference, raw, run_time, elapsed_ms, pass
		FROM results
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query results: %w", err)
	}
	defer rows.Close()

	results := []Result{}
	for rows.Next() {
		var (
			r         Result
			ref       sql.NullFloat64
			elapsedMS int64
		)
		if err := rows.Scan(&r.Seq, &r.QM, &r.MM, &r.Scenario, &r.Status, &r.Value,
			&ref, &r.Raw, &r.RunTime, &elapsedMS, &r.Pass); err != nil {
			return nil, fmt.Errorf("scan result: %w", err)
		}
		r.Reference, r.HasReference = ref.Float64, ref.Valid
		r.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate results: %w", err)
	}
	return results, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (Run, error) {
	var (
		run       Run
		started   string
		elapsedMS int64
	)
	if err := row.Scan(&run.ID, &started, &run.Mode, &run.Threads,
		&run.Passed, &run.Failed, &elapsedMS, &run.Finished); err != nil {
		return Run{}, fmt.Errorf("scan run: %w", err)
	}
	t, err := time.Parse(timeLayout, started)
	if err != nil {
		return Run{}, fmt.Errorf("parse started_at %q: %w", started, err)
	}
	run.StartedAt = t
	run.Elapsed = time.Duration(elapsedMS) * time.Millisecond
	return run, nil
}
