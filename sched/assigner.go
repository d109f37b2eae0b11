// File: sched/assigner.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sched

import (
	"fmt"

	"github.com/momentics/schedbench/api"
)

// Ensure compile-time interface compliance.
var _ api.PolicyAssigner = (*Assigner)(nil)

// Assigner applies scheduling classes from a TierTable to the calling thread.
type Assigner struct {
	table TierTable
}

// NewAssigner returns an Assigner over table.
func NewAssigner(table TierTable) *Assigner {
	return &Assigner{table: table}
}

// Apply sets the calling thread to policy at the value of tier. A rejected
// call (missing CAP_SYS_NICE, unsupported platform) yields ErrCodePolicy
// wrapping the OS error.
func (a *Assigner) Apply(policy api.Policy, tier int) error {
	value, err := a.table.Value(policy, tier)
	if err != nil {
		return err
	}
	return a.set(policy, value, tier)
}

// ApplyCoordinator sets the calling thread to policy at the coordinator value.
func (a *Assigner) ApplyCoordinator(policy api.Policy) error {
	return a.set(policy, a.table.CoordinatorValue(policy), -1)
}

func (a *Assigner) set(policy api.Policy, value, tier int) error {
	if err := setPlatform(policy, value); err != nil {
		return api.WrapError(api.ErrCodePolicy,
			fmt.Sprintf("sched: set %s value %d failed", policy, value), err).
			WithContext("tier", tier)
	}
	return nil
}
