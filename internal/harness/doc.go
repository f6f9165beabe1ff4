// Package harness times least-squares solves on random synthetic data.
//
// For every (rows, cols) pair of the configured grid the harness draws a
// rows×cols design matrix and a rows-length observation vector from the
// uniform distribution on [0, 1), times the generation, then times the solve.
// Rows form the outer loop and cols the inner loop.
//
// # Config Format
//
// The grid can be loaded from YAML:
//
//	rows: [5000, 10000]
//	cols: [500, 1000]
//	seed: 42
//
// Omitted keys keep their defaults. Unknown keys are rejected.
//
// # Report Format
//
// The text report starts with a header and then emits one line per pair as
// soon as it completes:
//
//	N M DATA_GENERATION_TIME REGRESSION_TIME
//	5000 500 0.0123 0.4567
//
// Times are in seconds.
//
// # Deterministic Testing
//
// Timing goes through the Clock interface, and generation through a seeded
// PCG source. Tests inject a stepping clock so reports are byte-stable and
// can be compared against golden files.
package harness
