// File: bench/options.go
// Package bench defines functional options for the Coordinator.
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bench

import (
	"github.com/momentics/schedbench/api"
	"github.com/momentics/schedbench/control"
)

// Option customizes coordinator initialization.
type Option func(*Coordinator)

// WithBinder replaces the OS affinity binder.
func WithBinder(b api.Binder) Option {
	return func(c *Coordinator) {
		c.binder = b
	}
}

// WithAssigner replaces the OS scheduling-policy assigner.
func WithAssigner(a api.PolicyAssigner) Option {
	return func(c *Coordinator) {
		c.assigner = a
	}
}

// WithMetrics records run counters into reg.
func WithMetrics(reg *control.MetricsRegistry) Option {
	return func(c *Coordinator) {
		c.metrics = reg
	}
}

// WithDebugProbes registers worker and barrier probes on dp.
func WithDebugProbes(dp *control.DebugProbes) Option {
	return func(c *Coordinator) {
		c.debug = dp
	}
}
