package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/roach88/olsfit/internal/harness"
	"github.com/roach88/olsfit/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	RunID    string // optional - show samples of one run
}

// HistoryRun is the JSON payload for a single recorded run.
type HistoryRun struct {
	ID        string           `json:"id"`
	StartedAt time.Time        `json:"started_at"`
	Seed      uint64           `json:"seed"`
	Samples   []harness.Sample `json:"samples"`
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded benchmark runs",
		Long: `List benchmark runs recorded with --history-db.

Without --run, prints one line per run in start order. With --run, prints
that run's samples in the same format as the live benchmark report.

Examples:
  olsfit history --db ./bench.db
  olsfit history --db ./bench.db --run 0190a3c4-...
  olsfit history --db ./bench.db --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "show samples of a single run")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runHistory(opts *HistoryOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	// Open would create a missing database; history only reads.
	if _, err := os.Stat(opts.Database); errors.Is(err, fs.ErrNotExist) {
		return formatter.fail(ErrCodeNotFound, fmt.Sprintf("database not found: %s", opts.Database), err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return formatter.fail(ErrCodeHistory, "could not open history database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if opts.RunID != "" {
		return showRun(ctx, st, opts.RunID, formatter)
	}
	return listRuns(ctx, st, formatter)
}

func listRuns(ctx context.Context, st *store.Store, formatter *OutputFormatter) error {
	runs, err := st.ListRuns(ctx)
	if err != nil {
		return formatter.fail(ErrCodeHistory, "could not list runs", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(runs)
	}

	if len(runs) == 0 {
		return formatter.Success("No runs recorded.")
	}

	tw := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSTARTED\tSEED\tSAMPLES")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", r.ID, r.StartedAt.Format(time.RFC3339), r.Seed, r.SampleCount)
	}
	return tw.Flush()
}

func showRun(ctx context.Context, st *store.Store, id string, formatter *OutputFormatter) error {
	run, err := st.ReadRun(ctx, id)
	if errors.Is(err, store.ErrRunNotFound) {
		return formatter.fail(ErrCodeNotFound, fmt.Sprintf("run not found: %s", id), err)
	}
	if err != nil {
		return formatter.fail(ErrCodeHistory, "could not read run", err)
	}

	if formatter.Format == "json" {
		return formatter.Success(HistoryRun{
			ID:        run.ID,
			StartedAt: run.StartedAt,
			Seed:      run.Seed,
			Samples:   run.Samples,
		})
	}

	reporter := harness.NewTextReporter(formatter.Writer)
	if err := reporter.WriteHeader(); err != nil {
		return err
	}
	for _, s := range run.Samples {
		if err := reporter.Emit(s); err != nil {
			return err
		}
	}
	return nil
}
