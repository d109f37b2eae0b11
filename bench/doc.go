// Package bench
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Coordinator and worker routine of the scheduling benchmark. The
// Coordinator lays out a grid of (core, slot) worker threads, assigns each a
// priority tier and a barrier group, launches them, and waits for all of
// them to finish. Each worker pins itself to its core, applies the run's
// scheduling policy at its tier, rendezvouses with its group, and then draws
// values from the shared work source and burns CPU on each one.
package bench
