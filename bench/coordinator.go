// File: bench/coordinator.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bench

import (
	"log"
	"runtime"

	"github.com/momentics/schedbench/affinity"
	"github.com/momentics/schedbench/api"
	"github.com/momentics/schedbench/control"
	"github.com/momentics/schedbench/internal/concurrency"
	"github.com/momentics/schedbench/sched"
)

// Coordinator builds the worker grid, launches it and joins it.
type Coordinator struct {
	cfg      *Config
	plan     *Plan
	source   *concurrency.WorkSource
	workers  []*Worker
	binder   api.Binder
	assigner api.PolicyAssigner
	metrics  *control.MetricsRegistry
	debug    *control.DebugProbes
}

// New validates cfg and lays out its grid. Nothing is started.
func New(cfg *Config, opts ...Option) (*Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	source, err := concurrency.NewWorkSource(cfg.Numbers)
	if err != nil {
		return nil, api.WrapError(api.ErrCodeConfig, "bench: work source", err)
	}
	c := &Coordinator{
		cfg:      cfg,
		plan:     NewPlan(cfg),
		source:   source,
		binder:   affinity.NewBinder(),
		assigner: sched.NewAssigner(cfg.TierTable),
		metrics:  control.NewMetricsRegistry(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.workers = make([]*Worker, len(c.plan.Workers))
	for i, wc := range c.plan.Workers {
		c.workers[i] = newWorker(wc)
	}
	if c.debug != nil {
		c.registerProbes(c.debug)
	}
	return c, nil
}

// Plan returns the worker grid.
func (c *Coordinator) Plan() *Plan { return c.plan }

// Source returns the shared work source.
func (c *Coordinator) Source() *concurrency.WorkSource { return c.source }

// Workers returns the workers indexed by ID.
func (c *Coordinator) Workers() []*Worker { return c.workers }

// Metrics returns the run metrics registry.
func (c *Coordinator) Metrics() *control.MetricsRegistry { return c.metrics }

// Run launches every worker and blocks until all of them are done. There
// is no timeout. The first fatal worker error is returned immediately
// without joining: peers already spinning at that worker's barrier can
// never be released, so the caller is expected to exit the process.
func (c *Coordinator) Run() error {
	errc := make(chan error, 1)
	// The launcher gets its own locked thread so a policy or affinity
	// change never leaks into the caller's thread.
	go func() {
		runtime.LockOSThread()
		errc <- c.coordinate()
	}()
	return <-errc
}

func (c *Coordinator) coordinate() error {
	if c.cfg.CoordinatorCore >= 0 {
		if err := c.binder.Bind(c.cfg.CoordinatorCore); err != nil {
			if c.cfg.AffinityStrict {
				return err
			}
			log.Printf("[bench] coordinator: affinity warning: %v", err)
		}
	}
	if c.cfg.Coordinator == CoordinatorShared {
		if err := c.assigner.ApplyCoordinator(c.cfg.Policy); err != nil {
			return err
		}
	}

	env := &runEnv{
		policy:   c.cfg.Policy,
		strict:   c.cfg.AffinityStrict,
		binder:   c.binder,
		assigner: c.assigner,
		source:   c.source,
	}
	results := make(chan error, len(c.workers))
	launch := c.plan.LaunchQueue()
	c.metrics.Set("run.policy", c.cfg.Policy.String())
	c.metrics.Set("run.groups", c.plan.GroupSizes())
	log.Printf("[bench] launching %d workers on %d cores, groups %v, policy %s",
		len(c.workers), len(c.cfg.Cores), c.plan.GroupSizes(), c.cfg.Policy)

	for launch.Length() > 0 {
		wc := launch.Remove().(*WorkerConfig)
		w := c.workers[wc.ID]
		go func() {
			results <- w.run(env)
		}()
		c.metrics.Add("workers.launched", 1)
	}

	for range c.workers {
		if err := <-results; err != nil {
			c.metrics.Add("workers.failed", 1)
			return err
		}
		c.metrics.Add("workers.done", 1)
	}
	c.metrics.Set("workers.unpinned", c.unpinned())
	c.metrics.Set("source.draws", c.source.Draws())
	log.Printf("[bench] all workers done, %d draws", c.source.Draws())
	return nil
}

func (c *Coordinator) unpinned() int {
	n := 0
	for _, w := range c.workers {
		if !w.Pinned() {
			n++
		}
	}
	return n
}

func (c *Coordinator) registerProbes(dp *control.DebugProbes) {
	dp.RegisterProbe("workers.states", func() any {
		counts := make(map[string]int)
		for _, w := range c.workers {
			counts[w.State().String()]++
		}
		return counts
	})
	dp.RegisterProbe("workers.unpinned", func() any {
		return c.unpinned()
	})
	dp.RegisterProbe("barriers.generations", func() any {
		gens := make([]uint64, len(c.plan.Barriers))
		for i, b := range c.plan.Barriers {
			gens[i] = b.Generation()
		}
		return gens
	})
	dp.RegisterProbe("source.draws", func() any {
		return c.source.Draws()
	})
}
