package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/olsfit/internal/dataio"
	"github.com/roach88/olsfit/internal/harness"
	"github.com/roach88/olsfit/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// FitOptions holds the flags of the root command.
type FitOptions struct {
	*RootOptions

	XPath     string
	YPath     string
	Output    string
	Delimiter string
	SkipRows  int

	Benchmark   bool
	Rows        []int
	Cols        []int
	Seed        uint64
	BenchConfig string
	HistoryDB   string

	// Clock overrides the benchmark wall clock (for testing).
	// If nil, defaults to harness.SystemClock.
	Clock harness.Clock

	// RunIDs overrides the benchmark run id generator (for testing).
	// If nil, defaults to store.UUIDv7Generator.
	RunIDs store.IDGenerator
}

// NewRootCommand creates the root command for the olsfit CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&FitOptions{RootOptions: &RootOptions{}})
}

func newRootCommand(opts *FitOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "olsfit",
		Short: "Ordinary least squares regression",
		Long: `Perform an ordinary least squares regression.

Reads an n×m data matrix (-x) and an n-vector of observations (-y) from
delimited text files, solves for the m coefficients minimizing the residual
sum of squares, and writes them one per line to -o or standard output.

With --benchmark, random synthetic data is generated for a grid of shapes and
the data generation and regression times are reported instead.

Exit codes:
  0 - Success
  1 - Runtime failure
  2 - Command error (missing arguments, unreadable input, etc.)

Examples:
  olsfit -x data.txt -y obs.txt
  olsfit -x data.csv -y obs.csv -d , --skiprows 1 -o beta.txt
  olsfit --benchmark --rows 1000,2000 --cols 100
  olsfit --benchmark --bench-config bench.yaml --history-db bench.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't print usage on errors
		SilenceErrors: true, // main prints errors with the exit code
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("%s: invalid format %q: must be one of %v", ErrCodeUsage, opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.Benchmark {
				return runBenchmark(opts, cmd)
			}
			return runFit(opts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Regression flags
	cmd.Flags().StringVarP(&opts.XPath, "xmat", "x", "", "n×m data matrix file")
	cmd.Flags().StringVarP(&opts.YPath, "yvec", "y", "", "n×1 observation vector file")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "file to write coefficients to (default stdout)")
	cmd.Flags().StringVarP(&opts.Delimiter, "delimiter", "d", dataio.DefaultDelimiter, "delimiter between values in input files")
	cmd.Flags().IntVar(&opts.SkipRows, "skiprows", 0, "number of rows to skip at the beginning of each input file")

	// Benchmark flags
	cmd.Flags().BoolVar(&opts.Benchmark, "benchmark", false, "run a benchmark using random synthetic data")
	cmd.Flags().IntSliceVar(&opts.Rows, "rows", harness.DefaultRows, "benchmark row counts")
	cmd.Flags().IntSliceVar(&opts.Cols, "cols", harness.DefaultCols, "benchmark column counts")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", harness.DefaultSeed, "benchmark random seed")
	cmd.Flags().StringVar(&opts.BenchConfig, "bench-config", "", "YAML file defining the benchmark grid")
	cmd.Flags().StringVar(&opts.HistoryDB, "history-db", "", "SQLite file to record benchmark runs in")

	cmd.AddCommand(NewHistoryCommand(opts.RootOptions))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

// newFormatter builds the formatter for a command invocation. Results go to
// stdout, logs to stderr.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}
