package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/olsfit/internal/harness"
)

// ErrRunNotFound is returned by ReadRun when no run has the requested id.
var ErrRunNotFound = errors.New("run not found")

// RunSummary describes a run without its samples.
type RunSummary struct {
	ID          string    `json:"id"`
	StartedAt   time.Time `json:"started_at"`
	Seed        uint64    `json:"seed"`
	SampleCount int       `json:"samples"`
}

// ListRuns returns all recorded runs ordered by start time, then id.
//
// Returns an empty slice (not nil) if no runs exist.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT r.id, r.started_ns, r.seed, COUNT(b.seq)
		FROM bench_runs r
		LEFT JOIN bench_samples b ON b.run_id = r.id
		GROUP BY r.id
		ORDER BY r.started_ns ASC, r.id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []RunSummary{}
	for rows.Next() {
		var (
			sum       RunSummary
			startedNs int64
			seed      int64
		)
		if err := rows.Scan(&sum.ID, &startedNs, &seed, &sum.SampleCount); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		sum.StartedAt = time.Unix(0, startedNs).UTC()
		sum.Seed = uint64(seed)
		runs = append(runs, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}

	return runs, nil
}

// ReadRun returns a run and its samples in recorded order.
// Returns ErrRunNotFound (wrapped) if the id is unknown.
func (s *Store) ReadRun(ctx context.Context, id string) (Run, error) {
	var (
		run       Run
		startedNs int64
		seed      int64
	)
	err := s.db.QueryRowContext(ctx, `
		SELECT id, started_ns, seed FROM bench_runs WHERE id = ?
	`, id).Scan(&run.ID, &startedNs, &seed)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("read run %q: %w", id, ErrRunNotFound)
	}
	if err != nil {
		return Run{}, fmt.Errorf("read run %q: %w", id, err)
	}
	run.StartedAt = time.Unix(0, startedNs).UTC()
	run.Seed = uint64(seed)

	samples, err := s.readSamples(ctx, id)
	if err != nil {
		return Run{}, err
	}
	run.Samples = samples

	return run, nil
}

// readSamples returns the samples of a run ordered by seq.
func (s *Store) readSamples(ctx context.Context, runID string) ([]harness.Sample, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT n, m, generation_ns, solve_ns, svd_rank
		FROM bench_samples
		WHERE run_id = ?
		ORDER BY seq ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query samples: %w", err)
	}
	defer rows.Close()

	samples := []harness.Sample{}
	for rows.Next() {
		var n, m, rank int
		var genNs, solveNs int64
		if err := rows.Scan(&n, &m, &genNs, &solveNs, &rank); err != nil {
			return nil, fmt.Errorf("scan sample: %w", err)
		}
		samples = append(samples, harness.NewSample(n, m, time.Duration(genNs), time.Duration(solveNs), rank))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate samples: %w", err)
	}

	return samples, nil
}
