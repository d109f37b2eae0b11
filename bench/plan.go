// File: bench/plan.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// Grid layout: every (core, slot) cell becomes one WorkerConfig with its
// priority tier and barrier group fixed before any thread starts.

package bench

import (
	"sort"

	"github.com/eapache/queue"

	"github.com/momentics/schedbench/internal/concurrency"
)

// WorkerConfig is the immutable parameter set of one worker thread.
type WorkerConfig struct {
	ID         int
	Core       int // logical CPU the worker binds to
	Slot       int // thread index within its core
	Tier       int // index into the policy's tier table
	Group      int // barrier group index
	Barrier    *concurrency.RendezvousBarrier
	Rounds     int
	Iterations int
}

// Plan is the full worker grid of a run.
type Plan struct {
	Workers  []WorkerConfig // indexed by ID, core-major
	Barriers []*concurrency.RendezvousBarrier
	cores    int
	slots    int
}

// NewPlan lays out cfg's grid. cfg must already be valid.
func NewPlan(cfg *Config) *Plan {
	tiers := cfg.TierTable.Len(cfg.Policy)
	p := &Plan{
		Workers: make([]WorkerConfig, 0, len(cfg.Cores)*cfg.ThreadsPerCore),
		cores:   len(cfg.Cores),
		slots:   cfg.ThreadsPerCore,
	}
	keys := make([]int, 0, cap(p.Workers))
	for ci, core := range cfg.Cores {
		for slot := 0; slot < cfg.ThreadsPerCore; slot++ {
			tier := 0
			switch cfg.Tiers {
			case TierBySlot:
				tier = slot % tiers
			case TierByCore:
				tier = ci % tiers
			}
			key := 0
			switch cfg.Groups {
			case GroupTier:
				key = tier
			case GroupCore:
				key = ci
			case GroupSlot:
				key = slot
			}
			keys = append(keys, key)
			p.Workers = append(p.Workers, WorkerConfig{
				ID:         len(p.Workers),
				Core:       core,
				Slot:       slot,
				Tier:       tier,
				Rounds:     cfg.Rounds,
				Iterations: cfg.Iterations,
			})
		}
	}

	// Dense group indices in ascending key order so tier 0 is group 0.
	distinct := make([]int, 0)
	members := make(map[int]int)
	for _, k := range keys {
		if members[k] == 0 {
			distinct = append(distinct, k)
		}
		members[k]++
	}
	sort.Ints(distinct)
	index := make(map[int]int, len(distinct))
	for i, k := range distinct {
		index[k] = i
		p.Barriers = append(p.Barriers, concurrency.NewRendezvousBarrier(members[k]))
	}
	for i := range p.Workers {
		g := index[keys[i]]
		p.Workers[i].Group = g
		p.Workers[i].Barrier = p.Barriers[g]
	}
	return p
}

// LaunchQueue returns the workers in launch order: slot-major, so every
// core receives its first thread before any core receives a second one.
func (p *Plan) LaunchQueue() *queue.Queue {
	q := queue.New()
	for slot := 0; slot < p.slots; slot++ {
		for ci := 0; ci < p.cores; ci++ {
			q.Add(&p.Workers[ci*p.slots+slot])
		}
	}
	return q
}

// GroupSizes returns the party count of every barrier group.
func (p *Plan) GroupSizes() []int {
	sizes := make([]int, len(p.Barriers))
	for i, b := range p.Barriers {
		sizes[i] = b.Parties()
	}
	return sizes
}
