package sched_test

import (
	"errors"
	"testing"

	"github.com/momentics/schedbench/api"
	"github.com/momentics/schedbench/sched"
)

func TestTierTableValue(t *testing.T) {
	table := sched.DefaultTierTable()
	cases := []struct {
		policy api.Policy
		tier   int
		want   int
	}{
		{api.PolicyRoundRobin, 0, 99},
		{api.PolicyRoundRobin, 2, 1},
		{api.PolicyFifo, 1, 50},
		{api.PolicyOther, 0, -20},
		{api.PolicyOther, 2, 19},
	}
	for _, c := range cases {
		got, err := table.Value(c.policy, c.tier)
		if err != nil {
			t.Fatalf("Value(%s, %d) error: %v", c.policy, c.tier, err)
		}
		if got != c.want {
			t.Errorf("Value(%s, %d) = %d, want %d", c.policy, c.tier, got, c.want)
		}
	}
}

func TestTierTableValueOutOfRange(t *testing.T) {
	table := sched.DefaultTierTable()
	for _, tier := range []int{-1, 3} {
		_, err := table.Value(api.PolicyFifo, tier)
		if !errors.Is(err, api.ErrInvalidArgument) {
			t.Errorf("Value(fifo, %d) = %v, want ErrInvalidArgument", tier, err)
		}
		if api.CodeOf(err) != api.ErrCodeConfig {
			t.Errorf("Value(fifo, %d) code = %v", tier, api.CodeOf(err))
		}
	}
}

func TestTierTableCoordinatorValue(t *testing.T) {
	table := sched.DefaultTierTable()
	if v := table.CoordinatorValue(api.PolicyRoundRobin); v != 1 {
		t.Errorf("realtime coordinator = %d, want 1", v)
	}
	if v := table.CoordinatorValue(api.PolicyOther); v != 19 {
		t.Errorf("nice coordinator = %d, want 19", v)
	}
}

func TestTierTableValidate(t *testing.T) {
	if err := sched.DefaultTierTable().Validate(); err != nil {
		t.Fatalf("default table invalid: %v", err)
	}
	bad := []sched.TierTable{
		{RealTime: []int{100}, Nice: []int{0}, CoordinatorRealTime: 1},
		{RealTime: []int{10}, Nice: []int{-21}, CoordinatorRealTime: 1},
		{RealTime: []int{10}, Nice: []int{0}, CoordinatorRealTime: 0},
		{RealTime: nil, Nice: []int{0}, CoordinatorRealTime: 1},
	}
	for i, tt := range bad {
		if err := tt.Validate(); api.CodeOf(err) != api.ErrCodeConfig {
			t.Errorf("case %d: Validate() = %v, want config error", i, err)
		}
	}
}

func TestTierTableLen(t *testing.T) {
	table := sched.TierTable{RealTime: []int{10, 20}, Nice: []int{0, 5, 10, 15}}
	if n := table.Len(api.PolicyFifo); n != 2 {
		t.Errorf("Len(fifo) = %d", n)
	}
	if n := table.Len(api.PolicyOther); n != 4 {
		t.Errorf("Len(other) = %d", n)
	}
}
