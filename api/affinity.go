// Package api
// Author: momentics@gmail.com
//
// CPU affinity and scheduling-policy contracts for worker threads.

package api

// Binder restricts the calling OS thread to a single logical CPU.
type Binder interface {
	// Bind pins the calling thread to coreID. The caller must have locked
	// its goroutine to the OS thread beforehand.
	Bind(coreID int) error
}

// PolicyAssigner sets the calling OS thread's scheduling class and the
// priority or niceness selected by tier.
type PolicyAssigner interface {
	Apply(policy Policy, tier int) error
	// ApplyCoordinator uses the coordinator-specific tier of the table.
	ApplyCoordinator(policy Policy) error
}

// BinderFunc adapts a plain function to Binder.
type BinderFunc func(coreID int) error

// Bind calls f(coreID).
func (f BinderFunc) Bind(coreID int) error { return f(coreID) }
