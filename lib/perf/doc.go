// Package perf measures the store engines of tinycoll outside of `go test`.
//
// A Registry maps names to store kinds (a configured store factory) and to
// workloads (a benchmark body). The built-in workloads reuse the benchmarks of
// lib/store/testing:
//
//   - append: add elements behind the last one
//   - insert-front: add elements in front of all others
//   - contains: membership tests, half of them misses
//   - remove-at: remove the first element
//   - churn: random inserts and removals
//
// A Runner executes every selected (kind, workload) pair with
// testing.Benchmark, repeated PerfConfig.Runs times. Per pair it records:
//
//   - the time per operation over all runs (mean, deviation, min, max)
//   - allocations per operation
//   - the capacity utilisation (size / capacity) sampled by probing workloads,
//     kept in a go-metrics histogram
//
// The same numbers are exported as VictoriaMetrics counters and histograms
// (Runner.WritePrometheus) and can be written to CSV (WriteCSV). Every runner
// has a random id that is part of each CSV row so results of several
// invocations can be merged.
package perf
