package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/roach88/olsfit/internal/harness"
	"github.com/roach88/olsfit/internal/store"
)

// BenchmarkResult is the JSON payload of a benchmark run.
type BenchmarkResult struct {
	RunID   string           `json:"run_id,omitempty"`
	Seed    uint64           `json:"seed"`
	Samples []harness.Sample `json:"samples"`
}

// benchmarkConfig resolves the grid: defaults, then the YAML file, then any
// flags set explicitly on the command line.
func benchmarkConfig(opts *FitOptions, cmd *cobra.Command) (harness.Config, error) {
	cfg := harness.DefaultConfig()
	if opts.BenchConfig != "" {
		loaded, err := harness.LoadConfig(opts.BenchConfig)
		if err != nil {
			return harness.Config{}, err
		}
		cfg = *loaded
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Rows = append([]int(nil), opts.Rows...)
	}
	if flags.Changed("cols") {
		cfg.Cols = append([]int(nil), opts.Cols...)
	}
	if flags.Changed("seed") {
		cfg.Seed = opts.Seed
	}

	return cfg, cfg.Validate()
}

func runBenchmark(opts *FitOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := formatter.Logger()

	cfg, err := benchmarkConfig(opts, cmd)
	if err != nil {
		return formatter.fail(ErrCodeBenchConfig, "could not resolve benchmark config", err)
	}

	clock := opts.Clock
	if clock == nil {
		clock = harness.SystemClock{}
	}

	var st *store.Store
	if opts.HistoryDB != "" {
		st, err = store.Open(opts.HistoryDB)
		if err != nil {
			return formatter.fail(ErrCodeHistory, "could not open history database", err)
		}
		defer func() {
			if closeErr := st.Close(); closeErr != nil {
				logger.Error("error closing history database", "error", closeErr)
			}
		}()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	h := harness.New(cfg, harness.WithClock(clock), harness.WithLogger(logger))
	startedAt := clock.Now()
	logger.Info("running benchmark", "pairs", cfg.Pairs(), "seed", cfg.Seed)

	var emit func(harness.Sample) error
	if opts.Format != "json" {
		reporter := harness.NewTextReporter(formatter.Writer)
		if err := reporter.WriteHeader(); err != nil {
			return formatter.fail(ErrCodeWriteFailed, "could not write report", err)
		}
		emit = reporter.Emit
	}

	samples, err := h.Run(ctx, emit)
	if err != nil {
		return WrapExitError(ExitFailure, ErrCodeGeneric+": benchmark failed", err)
	}

	result := BenchmarkResult{Seed: cfg.Seed, Samples: samples}
	if st != nil {
		ids := opts.RunIDs
		if ids == nil {
			ids = store.UUIDv7Generator{}
		}
		result.RunID = ids.Generate()

		run := store.Run{ID: result.RunID, StartedAt: startedAt, Seed: cfg.Seed, Samples: samples}
		if err := st.RecordRun(ctx, run); err != nil {
			return formatter.fail(ErrCodeHistory, "could not record benchmark run", err)
		}
		logger.Info("benchmark recorded", "run_id", result.RunID, "db", opts.HistoryDB)
	}

	if opts.Format == "json" {
		return formatter.Success(result)
	}
	return nil
}
