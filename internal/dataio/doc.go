// Package dataio reads and writes the plain-text numeric files olsfit works on.
//
// # Input Format
//
// Matrices and vectors are stored one row per line with fields separated by a
// delimiter string (a single space by default):
//
//	# comments run to end of line
//	1 1
//	1 2
//	1 3
//
// Leading lines can be discarded with a skip count (useful for CSV headers).
// Blank lines and comment-only lines are ignored. Every data row must have the
// same number of fields, and every field must parse as a float64.
//
// A vector file may be written either as a single column or as a single row.
//
// # Output Format
//
// Vectors are written one value per line in %.18e notation, which reads back
// through LoadVector without loss.
//
// # Errors
//
// Load failures are reported as *LoadError with a LoadErrorCode:
//
//   - FILE_NOT_FOUND: the path does not exist
//   - PARSE_ERROR: content cannot be coerced to a numeric matrix
//
// Use IsNotFound and IsParseError to classify wrapped errors.
package dataio
