// Package bench measures solver wall-clock time and keeps a local
// history of runs in SQLite.
//
// The history is keyed by solver name and a digest of the input file,
// so timings are only ever compared against runs of the same
// computation on the same data. The earliest recorded run for a key
// is the baseline; reports show the percent change of the current
// mean against it.
//
// Ordering uses the seq column (monotonic rowid), never timestamps,
// so history reads are deterministic.
package bench
