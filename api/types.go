// File: api/types.go
// Author: momentics <momentics@gmail.com>
//
// Shared API-level type declarations and constants.

package api

// WorkerState enumerates the lifecycle of a benchmark worker thread.
type WorkerState int32

const (
	WorkerUnbound WorkerState = iota
	WorkerBound
	WorkerPolicySet
	WorkerWaiting
	WorkerRunning
	WorkerDone
	WorkerFailed
)

func (s WorkerState) String() string {
	switch s {
	case WorkerUnbound:
		return "unbound"
	case WorkerBound:
		return "bound"
	case WorkerPolicySet:
		return "policy_set"
	case WorkerWaiting:
		return "waiting"
	case WorkerRunning:
		return "running"
	case WorkerDone:
		return "done"
	case WorkerFailed:
		return "failed"
	default:
		return "unknown"
	}
}
