// File: bench/config.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bench

import (
	"fmt"
	"runtime"

	"github.com/momentics/schedbench/affinity"
	"github.com/momentics/schedbench/api"
	"github.com/momentics/schedbench/control"
	"github.com/momentics/schedbench/sched"
)

// GroupMode decides which workers rendezvous at the same barrier.
type GroupMode int

const (
	GroupAll  GroupMode = iota // one barrier for the whole grid
	GroupTier                  // one barrier per priority tier
	GroupCore                  // one barrier per core
	GroupSlot                  // one barrier per thread-in-core slot
)

// TierMode decides how a grid cell maps to a priority tier.
type TierMode int

const (
	TierBySlot  TierMode = iota // slot mod tiers
	TierByCore                  // core position mod tiers
	TierUniform                 // every worker on tier 0
)

// CoordinatorMode decides whether the launching thread adopts the run policy.
type CoordinatorMode int

const (
	CoordinatorInherit CoordinatorMode = iota // leave the launcher untouched
	CoordinatorShared                         // apply the run policy at the coordinator tier
)

var groupModes = map[string]GroupMode{"all": GroupAll, "tier": GroupTier, "core": GroupCore, "slot": GroupSlot}
var tierModes = map[string]TierMode{"slot": TierBySlot, "core": TierByCore, "uniform": TierUniform}
var coordinatorModes = map[string]CoordinatorMode{"inherit": CoordinatorInherit, "shared": CoordinatorShared}

// ParseGroupMode parses "all", "tier", "core" or "slot".
func ParseGroupMode(s string) (GroupMode, error) {
	if m, ok := groupModes[s]; ok {
		return m, nil
	}
	return 0, api.NewError(api.ErrCodeConfig, fmt.Sprintf("bench: unknown group mode %q", s))
}

// ParseTierMode parses "slot", "core" or "uniform".
func ParseTierMode(s string) (TierMode, error) {
	if m, ok := tierModes[s]; ok {
		return m, nil
	}
	return 0, api.NewError(api.ErrCodeConfig, fmt.Sprintf("bench: unknown tier mode %q", s))
}

// ParseCoordinatorMode parses "inherit" or "shared".
func ParseCoordinatorMode(s string) (CoordinatorMode, error) {
	if m, ok := coordinatorModes[s]; ok {
		return m, nil
	}
	return 0, api.NewError(api.ErrCodeConfig, fmt.Sprintf("bench: unknown coordinator mode %q", s))
}

// Config holds all parameters of one benchmark run.
type Config struct {
	Policy     api.Policy
	Rounds     int   // draws per worker
	Iterations int   // cube computations per draw
	Numbers    []int // work source values

	Cores          []int // logical CPUs forming the grid columns
	ThreadsPerCore int
	Groups         GroupMode
	Tiers          TierMode
	TierTable      sched.TierTable

	Coordinator     CoordinatorMode
	CoordinatorCore int  // -1 leaves the launcher unbound
	AffinityStrict  bool // false logs bind failures and keeps going
}

// allowedCPUs reports the CPU IDs the process may run on.
var allowedCPUs = affinity.Allowed

// defaultCores lists the allowed CPU IDs, which need not start at 0 under
// taskset or a cpuset. It falls back to 0..NumCPU-1 when the mask is unknown.
func defaultCores() []int {
	if cpus, err := allowedCPUs(); err == nil && len(cpus) > 0 {
		return cpus
	}
	cores := make([]int, runtime.NumCPU())
	for i := range cores {
		cores[i] = i
	}
	return cores
}

// DefaultConfig returns a single-cohort grid over every allowed CPU.
func DefaultConfig() *Config {
	cores := defaultCores()
	return &Config{
		Policy:          api.PolicyOther,
		Cores:           cores,
		ThreadsPerCore:  1,
		Groups:          GroupAll,
		Tiers:           TierBySlot,
		TierTable:       sched.DefaultTierTable(),
		Coordinator:     CoordinatorInherit,
		CoordinatorCore: -1,
		AffinityStrict:  true,
	}
}

// ApplyArgs copies the positional command-line contract into the config.
func (c *Config) ApplyArgs(a Args) {
	c.Policy = a.Policy
	c.Rounds = a.Rounds
	c.Iterations = a.Iterations
	c.Numbers = append([]int(nil), a.Numbers...)
}

// ApplyProfile overlays the fields set in p.
func (c *Config) ApplyProfile(p *control.Profile) error {
	if p == nil {
		return nil
	}
	if p.Cores != nil {
		c.Cores = append([]int(nil), p.Cores...)
	}
	if p.ThreadsPerCore != nil {
		c.ThreadsPerCore = *p.ThreadsPerCore
	}
	if p.Groups != "" {
		m, err := ParseGroupMode(p.Groups)
		if err != nil {
			return err
		}
		c.Groups = m
	}
	if p.TierMode != "" {
		m, err := ParseTierMode(p.TierMode)
		if err != nil {
			return err
		}
		c.Tiers = m
	}
	if p.Tiers.RealTime != nil {
		c.TierTable.RealTime = append([]int(nil), p.Tiers.RealTime...)
	}
	if p.Tiers.Nice != nil {
		c.TierTable.Nice = append([]int(nil), p.Tiers.Nice...)
	}
	if p.Tiers.CoordinatorRealTime != nil {
		c.TierTable.CoordinatorRealTime = *p.Tiers.CoordinatorRealTime
	}
	if p.Tiers.CoordinatorNice != nil {
		c.TierTable.CoordinatorNice = *p.Tiers.CoordinatorNice
	}
	if p.Coordinator.Mode != "" {
		m, err := ParseCoordinatorMode(p.Coordinator.Mode)
		if err != nil {
			return err
		}
		c.Coordinator = m
	}
	if p.Coordinator.Core != nil {
		c.CoordinatorCore = *p.Coordinator.Core
	}
	if p.AffinityStrict != nil {
		c.AffinityStrict = *p.AffinityStrict
	}
	return nil
}

// Validate rejects configurations that cannot produce a meaningful run.
func (c *Config) Validate() error {
	switch {
	case len(c.Numbers) == 0:
		return api.WrapError(api.ErrCodeConfig, "bench: no work values", api.ErrEmptySource)
	case c.Rounds < 0 || c.Iterations < 0:
		return api.NewError(api.ErrCodeConfig,
			fmt.Sprintf("bench: rounds (%d) and iterations (%d) must not be negative", c.Rounds, c.Iterations))
	case len(c.Cores) == 0:
		return api.NewError(api.ErrCodeConfig, "bench: no cores configured")
	case c.ThreadsPerCore <= 0:
		return api.NewError(api.ErrCodeConfig,
			fmt.Sprintf("bench: threads per core must be positive, got %d", c.ThreadsPerCore))
	}
	seen := make(map[int]bool, len(c.Cores))
	for _, core := range c.Cores {
		if core < 0 {
			return api.NewError(api.ErrCodeConfig, fmt.Sprintf("bench: invalid core %d", core))
		}
		if seen[core] {
			return api.NewError(api.ErrCodeConfig, fmt.Sprintf("bench: core %d listed twice", core))
		}
		seen[core] = true
	}
	if c.Groups < GroupAll || c.Groups > GroupSlot {
		return api.NewError(api.ErrCodeConfig, fmt.Sprintf("bench: invalid group mode %d", c.Groups))
	}
	if c.Tiers < TierBySlot || c.Tiers > TierUniform {
		return api.NewError(api.ErrCodeConfig, fmt.Sprintf("bench: invalid tier mode %d", c.Tiers))
	}
	return c.TierTable.Validate()
}

var groupModeNames = map[GroupMode]string{GroupAll: "all", GroupTier: "tier", GroupCore: "core", GroupSlot: "slot"}

func (m GroupMode) String() string {
	if s, ok := groupModeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("GroupMode(%d)", int(m))
}
