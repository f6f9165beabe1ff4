package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/olsfit/internal/dataio"
	"github.com/roach88/olsfit/internal/solver"
)

// FitResult is the JSON payload of a regression run.
type FitResult struct {
	Rows           int       `json:"n"`
	Cols           int       `json:"m"`
	Coefficients   []float64 `json:"coefficients"`
	Rank           int       `json:"rank"`
	SingularValues []float64 `json:"singular_values"`
	ResidualSS     float64   `json:"residual_sum_of_squares"`
	Output         string    `json:"output,omitempty"`
}

// validateFitArgs checks the flags that must hold before any file is read.
func validateFitArgs(opts *FitOptions) error {
	if opts.XPath == "" || opts.YPath == "" {
		return fmt.Errorf("-x and -y are required when not in benchmark mode")
	}
	if opts.Delimiter == "" {
		return fmt.Errorf("delimiter must not be empty")
	}
	if opts.SkipRows < 0 {
		return fmt.Errorf("--skiprows must be >= 0, got %d", opts.SkipRows)
	}
	return nil
}

func runFit(opts *FitOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)
	logger := formatter.Logger()

	if err := validateFitArgs(opts); err != nil {
		return formatter.fail(ErrCodeUsage, err.Error(), nil)
	}

	loadOpts := dataio.DefaultOptions()
	loadOpts.Delimiter = opts.Delimiter
	loadOpts.SkipRows = opts.SkipRows

	logger.Info("loading data", "xmat", opts.XPath, "yvec", opts.YPath)
	x, err := dataio.LoadMatrix(opts.XPath, loadOpts)
	if err != nil {
		return loadFailure(formatter, "XMAT", "matrix", err)
	}
	y, err := dataio.LoadVector(opts.YPath, loadOpts)
	if err != nil {
		return loadFailure(formatter, "YVEC", "vector", err)
	}
	n, m := x.Dims()
	logger.Info("data loaded", "n", n, "m", m)

	res, err := solver.LeastSquares(x, y)
	if err != nil {
		if solver.IsDimensionMismatch(err) {
			return formatter.fail(ErrCodeDimensionMismatch, "XMAT and YVEC have incompatible shapes", err)
		}
		if solver.IsNonFinite(err) {
			return formatter.fail(ErrCodeSolveFailed, "XMAT or YVEC contains NaN or Inf", err)
		}
		return formatter.fail(ErrCodeSolveFailed, "regression failed", err)
	}
	logger.Debug("regression solved",
		"rank", res.Rank,
		"residual_ss", res.ResidualSS,
	)
	if res.Rank < m {
		logger.Warn("design matrix is rank deficient; returning minimum-norm solution", "rank", res.Rank, "m", m)
	}

	if opts.Output != "" {
		logger.Info("saving output", "path", opts.Output)
		if err := dataio.WriteVectorFile(opts.Output, res.Coefficients); err != nil {
			return formatter.fail(ErrCodeWriteFailed, "could not write output", err)
		}
	}

	if opts.Format == "json" {
		return formatter.Success(FitResult{
			Rows:           n,
			Cols:           m,
			Coefficients:   res.Coefficients.RawVector().Data,
			Rank:           res.Rank,
			SingularValues: res.SingularValues,
			ResidualSS:     res.ResidualSS,
			Output:         opts.Output,
		})
	}

	if opts.Output == "" {
		if err := dataio.WriteVector(formatter.Writer, res.Coefficients); err != nil {
			return formatter.fail(ErrCodeWriteFailed, "could not write output", err)
		}
	}

	return nil
}

// loadFailure maps a dataio error onto the CLI error taxonomy.
func loadFailure(formatter *OutputFormatter, label, kind string, err error) error {
	if dataio.IsNotFound(err) {
		return formatter.fail(ErrCodeNotFound, fmt.Sprintf("could not find %s file", label), err)
	}
	if dataio.IsParseError(err) {
		return formatter.fail(ErrCodeParse,
			fmt.Sprintf("could not read %s file as %s; check the formatting", label, kind), err)
	}
	return formatter.fail(ErrCodeGeneric, fmt.Sprintf("could not load %s file", label), err)
}
