package solver

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes solver failures.
type ErrorCode string

const (
	// ErrCodeDimensionMismatch indicates rows(X) != len(y).
	ErrCodeDimensionMismatch ErrorCode = "DIMENSION_MISMATCH"

	// ErrCodeEmptyInput indicates X has no rows or no columns.
	ErrCodeEmptyInput ErrorCode = "EMPTY_INPUT"

	// ErrCodeInvalidCutoff indicates a negative singular value cutoff.
	ErrCodeInvalidCutoff ErrorCode = "INVALID_CUTOFF"

	// ErrCodeNonFinite indicates X or y contain NaN or Inf.
	ErrCodeNonFinite ErrorCode = "NON_FINITE"

	// ErrCodeNoConvergence indicates the SVD factorization failed.
	ErrCodeNoConvergence ErrorCode = "NO_CONVERGENCE"
)

// Error represents a failure to compute a least-squares solution.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsDimensionMismatch returns true if err reports mismatched X and y shapes.
func IsDimensionMismatch(err error) bool {
	return hasCode(err, ErrCodeDimensionMismatch)
}

// IsNonFinite returns true if err reports NaN or Inf input.
func IsNonFinite(err error) bool {
	return hasCode(err, ErrCodeNonFinite)
}

func hasCode(err error, code ErrorCode) bool {
	var se *Error
	if errors.As(err, &se) {
		return se.Code == code
	}
	return false
}

// NewDimensionMismatchError creates an Error for incompatible X and y.
func NewDimensionMismatchError(xRows, yLen int) *Error {
	return &Error{
		Code:    ErrCodeDimensionMismatch,
		Message: fmt.Sprintf("X has %d rows but y has %d values", xRows, yLen),
	}
}
