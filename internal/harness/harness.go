package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/roach88/olsfit/internal/solver"
)

// Harness runs the benchmark grid.
type Harness struct {
	cfg    Config
	clock  Clock
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithClock overrides the wall clock used for timing.
func WithClock(c Clock) Option {
	return func(h *Harness) {
		h.clock = c
	}
}

// WithLogger sets the logger for per-pair debug records.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// New creates a harness for cfg. The config is validated by Run.
func New(cfg Config, opts ...Option) *Harness {
	h := &Harness{
		cfg:    cfg,
		clock:  SystemClock{},
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run benchmarks every (rows, cols) pair in grid order, calling emit after
// each pair completes. It returns all samples collected before any error.
//
// Execution flow per pair:
// 1. Draw X and y from U[0, 1)
// 2. Solve the least-squares problem
// 3. Emit the sample
func (h *Harness) Run(ctx context.Context, emit func(Sample) error) ([]Sample, error) {
	if err := h.cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid benchmark config: %w", err)
	}

	rng := rand.New(rand.NewPCG(h.cfg.Seed, h.cfg.Seed^0x9e3779b97f4a7c15))
	samples := make([]Sample, 0, h.cfg.Pairs())

	for _, n := range h.cfg.Rows {
		for _, m := range h.cfg.Cols {
			if err := ctx.Err(); err != nil {
				return samples, err
			}

			sample, err := h.runPair(rng, n, m)
			if err != nil {
				return samples, err
			}
			samples = append(samples, sample)

			if emit != nil {
				if err := emit(sample); err != nil {
					return samples, fmt.Errorf("emit sample %dx%d: %w", n, m, err)
				}
			}
		}
	}

	return samples, nil
}

func (h *Harness) runPair(rng *rand.Rand, n, m int) (Sample, error) {
	genStart := h.clock.Now()
	x, y := Generate(rng, n, m)
	genEnd := h.clock.Now()

	solveStart := h.clock.Now()
	res, err := solver.LeastSquares(x, y)
	solveEnd := h.clock.Now()
	if err != nil {
		return Sample{}, fmt.Errorf("solve %dx%d: %w", n, m, err)
	}

	sample := NewSample(n, m, genEnd.Sub(genStart), solveEnd.Sub(solveStart), res.Rank)
	h.logger.Debug("benchmark pair complete",
		"n", n,
		"m", m,
		"generation", sample.Generation,
		"solve", sample.Solve,
		"rank", sample.Rank,
	)
	return sample, nil
}

// Generate draws an n×m matrix and an n-vector with entries uniform on [0, 1).
func Generate(rng *rand.Rand, n, m int) (*mat.Dense, *mat.VecDense) {
	xData := make([]float64, n*m)
	for i := range xData {
		xData[i] = rng.Float64()
	}
	yData := make([]float64, n)
	for i := range yData {
		yData[i] = rng.Float64()
	}
	return mat.NewDense(n, m, xData), mat.NewVecDense(n, yData)
}
