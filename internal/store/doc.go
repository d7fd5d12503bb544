// Package store provides SQLite-backed history of harness runs.
//
// The store keeps two tables:
//   - runs: one row per harness invocation (mode, threads, tallies)
//   - results: one row per scenario verdict, ordered by seq within a run
//
// Results are written as they are produced, so an interrupted run still
// leaves the verdicts reached so far. FinishRun fills in the tallies.
//
// # Ordering
//
// Result queries use ORDER BY seq ASC. seq is the position of the verdict
// within its run, never a timestamp, so listings are stable regardless of
// clock resolution.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
package store
