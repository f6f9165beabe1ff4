// Package store provides SQLite-backed history for benchmark runs.
//
// Each run records its identifier, start time and seed, plus one sample per
// (n, m) pair with generation and solve durations in nanoseconds. Runs are
// written in a single transaction, so a run is either fully recorded or absent.
//
// # Deterministic Query Results
//
//   - Runs are ordered by start time, then id (COLLATE BINARY)
//   - Samples are ordered by their sequence within the run
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Run identifiers are UUIDv7 by default (see UUIDv7Generator), which sort by
// creation time.
package store
