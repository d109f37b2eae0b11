// File: internal/concurrency/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Synchronization primitives for the scheduling benchmark: a reusable
// busy-wait rendezvous barrier, the mutex-guarded round-robin work source
// shared by every worker, and the fixed-cost CPU burn loop.
//
// None of these primitives block in the kernel except the work source
// mutex under contention; the barrier only spins so that the OS scheduling
// policy, not sleep/wake latency, governs what is observed.
package concurrency
