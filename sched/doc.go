// Package sched
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Per-thread scheduling class and priority assignment. A TierTable maps a
// small tier index to a real-time priority (SCHED_RR, SCHED_FIFO) or to a
// niceness value (SCHED_OTHER), and Assigner applies the result to the
// calling OS thread.
package sched
