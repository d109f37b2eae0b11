// File: bench/worker.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bench

import (
	"log"
	"runtime"
	"sync/atomic"

	"github.com/momentics/schedbench/api"
	"github.com/momentics/schedbench/internal/concurrency"
)

// Worker runs one grid cell: Unbound → Bound → PolicySet → Waiting →
// Running → Done. A bind (strict mode) or policy failure ends in Failed.
// A lenient bind failure skips Bound and leaves the worker unpinned.
type Worker struct {
	cfg    WorkerConfig
	state  atomic.Int32
	pinned atomic.Bool
}

func newWorker(cfg WorkerConfig) *Worker {
	return &Worker{cfg: cfg}
}

// Config returns the worker's parameters.
func (w *Worker) Config() WorkerConfig { return w.cfg }

// Pinned reports whether the worker's thread was bound to its core.
func (w *Worker) Pinned() bool { return w.pinned.Load() }

// State returns the current lifecycle state.
func (w *Worker) State() api.WorkerState {
	return api.WorkerState(w.state.Load())
}

func (w *Worker) setState(s api.WorkerState) {
	w.state.Store(int32(s))
}

// run executes the worker routine on the calling goroutine. The goroutine
// stays locked to its OS thread for good: once the thread's affinity and
// policy are changed it must not return to the runtime's pool.
func (w *Worker) run(env *runEnv) error {
	runtime.LockOSThread()

	if err := env.binder.Bind(w.cfg.Core); err != nil {
		if env.strict {
			w.setState(api.WorkerFailed)
			return err
		}
		log.Printf("[bench] worker %d: affinity warning: %v", w.cfg.ID, err)
	} else {
		w.pinned.Store(true)
		w.setState(api.WorkerBound)
	}

	if err := env.assigner.Apply(env.policy, w.cfg.Tier); err != nil {
		w.setState(api.WorkerFailed)
		return err
	}
	w.setState(api.WorkerPolicySet)

	w.setState(api.WorkerWaiting)
	w.cfg.Barrier.Wait()

	w.setState(api.WorkerRunning)
	for r := 0; r < w.cfg.Rounds; r++ {
		concurrency.Burn(env.source.Next(), w.cfg.Iterations)
	}
	w.setState(api.WorkerDone)
	return nil
}

// runEnv is what every worker of a run shares.
type runEnv struct {
	policy   api.Policy
	strict   bool
	binder   api.Binder
	assigner api.PolicyAssigner
	source   *concurrency.WorkSource
}
