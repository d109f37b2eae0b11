// Package tracestat
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Offline analysis of `trace-cmd report` output captured while a benchmark
// runs. For each named thread it sums the time spent on a CPU between
// sched_switch events inside a time window, which is how the effect of a
// scheduling policy on the worker grid is observed from outside the process.
//
// Results can be rendered as text, encoded as JSON, or persisted to SQLite
// keyed by a SHA3-256 digest of the raw capture.
package tracestat
