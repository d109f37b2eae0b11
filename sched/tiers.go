// File: sched/tiers.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package sched

import (
	"fmt"

	"github.com/momentics/schedbench/api"
)

const (
	MinRealTimePriority = 1
	MaxRealTimePriority = 99
	MinNice             = -20
	MaxNice             = 19
)

// TierTable holds the policy-specific lookup tables for priority tiers.
type TierTable struct {
	RealTime []int
	Nice     []int

	// Values used for the coordinating thread when it shares the run policy.
	CoordinatorRealTime int
	CoordinatorNice     int
}

// DefaultTierTable returns the high/mid/low tables; the coordinator sits at
// the lowest priority of each scale.
func DefaultTierTable() TierTable {
	return TierTable{
		RealTime:            []int{99, 50, 1},
		Nice:                []int{-20, 0, 19},
		CoordinatorRealTime: 1,
		CoordinatorNice:     19,
	}
}

// Len returns the number of tiers available for policy.
func (t TierTable) Len(policy api.Policy) int {
	if policy.RealTime() {
		return len(t.RealTime)
	}
	return len(t.Nice)
}

// Value resolves tier to the concrete priority or niceness for policy.
func (t TierTable) Value(policy api.Policy, tier int) (int, error) {
	table := t.Nice
	if policy.RealTime() {
		table = t.RealTime
	}
	if tier < 0 || tier >= len(table) {
		return 0, api.WrapError(api.ErrCodeConfig,
			fmt.Sprintf("sched: tier %d out of range for %s (%d tiers)", tier, policy, len(table)),
			api.ErrInvalidArgument)
	}
	return table[tier], nil
}

// CoordinatorValue returns the coordinator priority or niceness for policy.
func (t TierTable) CoordinatorValue(policy api.Policy) int {
	if policy.RealTime() {
		return t.CoordinatorRealTime
	}
	return t.CoordinatorNice
}

// Validate checks every entry against the OS range of its scale.
func (t TierTable) Validate() error {
	if len(t.RealTime) == 0 || len(t.Nice) == 0 {
		return api.NewError(api.ErrCodeConfig, "sched: tier tables must not be empty")
	}
	check := func(name string, v, lo, hi int) error {
		if v < lo || v > hi {
			return api.NewError(api.ErrCodeConfig,
				fmt.Sprintf("sched: %s value %d outside [%d, %d]", name, v, lo, hi))
		}
		return nil
	}
	for i, v := range t.RealTime {
		if err := check(fmt.Sprintf("realtime[%d]", i), v, MinRealTimePriority, MaxRealTimePriority); err != nil {
			return err
		}
	}
	for i, v := range t.Nice {
		if err := check(fmt.Sprintf("nice[%d]", i), v, MinNice, MaxNice); err != nil {
			return err
		}
	}
	if err := check("coordinator_realtime", t.CoordinatorRealTime, MinRealTimePriority, MaxRealTimePriority); err != nil {
		return err
	}
	return check("coordinator_nice", t.CoordinatorNice, MinNice, MaxNice)
}
