package harness

import "time"

// Sample is the timing of one (rows, cols) pair.
type Sample struct {
	// Rows is the observation count n.
	Rows int `json:"n"`

	// Cols is the predictor count m.
	Cols int `json:"m"`

	// Generation is the time spent drawing X and y.
	Generation time.Duration `json:"-"`

	// Solve is the time spent in the least-squares solve.
	Solve time.Duration `json:"-"`

	// GenerationSeconds and SolveSeconds mirror the durations for JSON output.
	GenerationSeconds float64 `json:"data_generation_time"`
	SolveSeconds      float64 `json:"regression_time"`

	// Rank is the numerical rank of the generated design matrix.
	Rank int `json:"rank"`
}

// NewSample builds a Sample, filling the seconds fields from the durations.
func NewSample(rows, cols int, gen, solve time.Duration, rank int) Sample {
	return Sample{
		Rows:              rows,
		Cols:              cols,
		Generation:        gen,
		Solve:             solve,
		GenerationSeconds: gen.Seconds(),
		SolveSeconds:      solve.Seconds(),
		Rank:              rank,
	}
}

// Clock supplies wall time for the harness timers.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}
