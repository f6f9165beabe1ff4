// Package solver computes ordinary least squares coefficients.
//
// LeastSquares minimizes ‖Xβ − y‖² through a thin singular value
// decomposition of X. Singular values below a relative cutoff are treated as
// zero, so rank-deficient designs produce the minimum-norm minimizer instead
// of a numerical failure.
package solver

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Result holds a least-squares solution and the diagnostics of the solve.
type Result struct {
	// Coefficients is β, one value per column of X.
	Coefficients *mat.VecDense

	// Rank is the numerical rank of X under the cutoff used.
	Rank int

	// SingularValues are the singular values of X in descending order.
	SingularValues []float64

	// ResidualSS is ‖Xβ − y‖².
	ResidualSS float64
}

// DefaultRCond returns the relative singular value cutoff for an n×m design:
// machine epsilon scaled by the larger dimension.
func DefaultRCond(n, m int) float64 {
	return 0x1p-52 * float64(max(n, m))
}

// LeastSquares solves min ‖Xβ − y‖² using the default cutoff.
func LeastSquares(x mat.Matrix, y mat.Vector) (*Result, error) {
	n, m := x.Dims()
	return LeastSquaresCutoff(x, y, DefaultRCond(n, m))
}

// LeastSquaresCutoff solves min ‖Xβ − y‖², treating singular values at or
// below rcond·σmax as zero.
func LeastSquaresCutoff(x mat.Matrix, y mat.Vector, rcond float64) (*Result, error) {
	n, m := x.Dims()
	if n == 0 || m == 0 {
		return nil, &Error{Code: ErrCodeEmptyInput, Message: fmt.Sprintf("X is %d×%d", n, m)}
	}
	if n != y.Len() {
		return nil, NewDimensionMismatchError(n, y.Len())
	}
	if rcond < 0 {
		return nil, &Error{Code: ErrCodeInvalidCutoff, Message: fmt.Sprintf("rcond must be >= 0, got %g", rcond)}
	}
	if err := checkFinite(x, y); err != nil {
		return nil, err
	}

	var svd mat.SVD
	if ok := svd.Factorize(x, mat.SVDThin); !ok {
		return nil, &Error{Code: ErrCodeNoConvergence, Message: "SVD factorization did not converge"}
	}

	values := svd.Values(nil)
	rank := numericalRank(values, rcond)

	beta := mat.NewVecDense(m, nil)
	if rank > 0 {
		// An all-zero design has rank 0 and the zero vector is the
		// minimum-norm minimizer, which beta already holds.
		svd.SolveVecTo(beta, y, rank)
	}

	residual := Residual(x, y, beta)
	return &Result{
		Coefficients:   beta,
		Rank:           rank,
		SingularValues: values,
		ResidualSS:     mat.Dot(residual, residual),
	}, nil
}

// Residual returns Xβ − y.
func Residual(x mat.Matrix, y, beta mat.Vector) *mat.VecDense {
	var r mat.VecDense
	r.MulVec(x, beta)
	r.SubVec(&r, y)
	return &r
}

// NormalResidual returns Xᵗ(Xβ − y), which vanishes at any least-squares
// minimizer.
func NormalResidual(x mat.Matrix, y, beta mat.Vector) *mat.VecDense {
	var g mat.VecDense
	g.MulVec(x.T(), Residual(x, y, beta))
	return &g
}

// numericalRank counts singular values strictly above rcond·σmax. values
// must be sorted in descending order.
func numericalRank(values []float64, rcond float64) int {
	if len(values) == 0 || values[0] == 0 {
		return 0
	}
	cutoff := rcond * values[0]
	rank := 0
	for _, s := range values {
		if s > cutoff {
			rank++
		}
	}
	return rank
}

func checkFinite(x mat.Matrix, y mat.Vector) error {
	n, m := x.Dims()
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			if v := x.At(i, j); math.IsNaN(v) || math.IsInf(v, 0) {
				return &Error{Code: ErrCodeNonFinite, Message: fmt.Sprintf("X[%d,%d] is %v", i, j, v)}
			}
		}
	}
	for i := 0; i < y.Len(); i++ {
		if v := y.AtVec(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return &Error{Code: ErrCodeNonFinite, Message: fmt.Sprintf("y[%d] is %v", i, v)}
		}
	}
	return nil
}
