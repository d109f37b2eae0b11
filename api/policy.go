// File: api/policy.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Scheduling policy identifiers shared by the assigner, the CLI front door
// and the coordinator.

package api

import "fmt"

// Policy is the OS scheduling class selected once for a whole run.
type Policy int

const (
	PolicyRoundRobin Policy = iota
	PolicyFifo
	PolicyOther
)

// ParsePolicy maps a command-line policy name to a Policy.
// SCHED_OTHER and SCHED_NORMAL are synonyms.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "SCHED_RR":
		return PolicyRoundRobin, nil
	case "SCHED_FIFO":
		return PolicyFifo, nil
	case "SCHED_OTHER", "SCHED_NORMAL":
		return PolicyOther, nil
	}
	return 0, NewError(ErrCodeUsage, fmt.Sprintf("unknown scheduler type: %q", name)).
		WithContext("policy", name)
}

// RealTime reports whether the policy uses the real-time priority scale
// rather than niceness.
func (p Policy) RealTime() bool {
	return p == PolicyRoundRobin || p == PolicyFifo
}

func (p Policy) String() string {
	switch p {
	case PolicyRoundRobin:
		return "SCHED_RR"
	case PolicyFifo:
		return "SCHED_FIFO"
	case PolicyOther:
		return "SCHED_OTHER"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}
