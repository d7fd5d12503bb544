package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/lichemtest/internal/harness"
)

// Run modes.
const (
	ModeExplicit = "explicit"
	ModeAll      = "all"
)

// timeLayout has fixed-width fractional seconds so that stored times sort
// lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// RunInfo describes a harness invocation at its start.
type RunInfo struct {
	StartedAt time.Time
	Mode      string
	Threads   int
}

// BeginRun inserts a run and returns its ID, a random UUID.
func (s *Store) BeginRun(ctx context.Context, info RunInfo) (string, error) {
	id := uuid.NewString()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, started_at, mode, threads)
		VALUES (?, ?, ?, ?)
	`,
		id,
		info.StartedAt.UTC().Format(timeLayout),
		info.Mode,
		info.Threads,
	)
	if err != nil {
		return "", fmt.Errorf("begin run: %w", err)
	}
	return id, nil
}

// WriteResult inserts the seq-th result of a run.
// The run referenced by runID must exist (foreign key constraint).
func (s *Store) WriteResult(ctx context.Context, runID string, seq int64, r harness.RunResult) error {
	var ref any
	if r.HasReference {
		ref = r.Reference
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO results
		(run_id, seq, qm, mm, scenario, status, value, reference, raw, run_time, elapsed_ms, pass)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		runID,
		seq,
		r.QM,
		r.MM,
		r.Scenario,
		r.Status(),
		r.Value,
		ref,
		r.Raw,
		r.RunTime,
		r.Elapsed.Milliseconds(),
		r.Pass,
	)
	if err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// FinishRun stores the final tallies of a run.
func (s *Store) FinishRun(ctx context.Context, runID string, passed, failed int, elapsed time.Duration) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE runs
		SET passed = ?, failed = ?, elapsed_ms = ?, finished = 1
		WHERE id = ?
	`, passed, failed, elapsed.Milliseconds(), runID)
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("finish run: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("finish run: unknown run %q", runID)
	}
	return nil
}

// Recorder appends harness results to one run. It satisfies
// harness.Recorder.
type Recorder struct {
	store *Store
	runID string

	mu  sync.Mutex
	seq int64
}

// NewRecorder returns a recorder for an existing run.
func (s *Store) NewRecorder(runID string) *Recorder {
	return &Recorder{store: s, runID: runID}
}

// RunID is the run the recorder writes to.
func (r *Recorder) RunID() string {
	return r.runID
}

// Record writes r as the next result of the run.
func (r *Recorder) Record(ctx context.Context, res harness.RunResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.store.WriteResult(ctx, r.runID, r.seq, res)
}
