package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/olsfit/internal/harness"
)

// Run is one recorded benchmark run.
type Run struct {
	ID        string
	StartedAt time.Time
	Seed      uint64
	Samples   []harness.Sample
}

// ErrEmptyRunID is returned when a run has no identifier.
var ErrEmptyRunID = errors.New("run id is required")

// RecordRun inserts a run and all of its samples in one transaction.
// Recording the same run id twice fails with a constraint error.
func (s *Store) RecordRun(ctx context.Context, run Run) (err error) {
	if run.ID == "" {
		return fmt.Errorf("record run: %w", ErrEmptyRunID)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record run: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// The seed is stored as its two's-complement int64; go-sqlite3 rejects
	// uint64 values with the high bit set.
	_, err = tx.ExecContext(ctx, `
		INSERT INTO bench_runs (id, started_ns, seed)
		VALUES (?, ?, ?)
	`, run.ID, run.StartedAt.UnixNano(), int64(run.Seed))
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	for i, sample := range run.Samples {
		_, err = tx.ExecContext(ctx, `
			INSERT INTO bench_samples (run_id, seq, n, m, generation_ns, solve_ns, svd_rank)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`,
			run.ID,
			i+1,
			sample.Rows,
			sample.Cols,
			int64(sample.Generation),
			int64(sample.Solve),
			sample.Rank,
		)
		if err != nil {
			return fmt.Errorf("record sample %d: %w", i+1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("record run: commit: %w", err)
	}
	return nil
}
