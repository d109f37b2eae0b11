package bench_test

import (
	"reflect"
	"runtime"
	"testing"

	"github.com/momentics/schedbench/affinity"
	"github.com/momentics/schedbench/api"
	"github.com/momentics/schedbench/bench"
	"github.com/momentics/schedbench/control"
)

func TestDefaultConfig(t *testing.T) {
	cfg := bench.DefaultConfig()
	if allowed, err := affinity.Allowed(); err == nil {
		if !reflect.DeepEqual(cfg.Cores, allowed) {
			t.Errorf("cores = %v, allowed = %v", cfg.Cores, allowed)
		}
	} else if len(cfg.Cores) != runtime.NumCPU() {
		t.Errorf("cores = %v, NumCPU = %d", cfg.Cores, runtime.NumCPU())
	}
	if cfg.ThreadsPerCore != 1 {
		t.Errorf("threads per core = %d", cfg.ThreadsPerCore)
	}
	if cfg.CoordinatorCore != -1 || cfg.Coordinator != bench.CoordinatorInherit || !cfg.AffinityStrict {
		t.Errorf("coordinator defaults = %+v", cfg)
	}
}

func TestDefaultConfigFollowsAllowedMask(t *testing.T) {
	restore := bench.SetAllowedCPUs(func() ([]int, error) { return []int{2, 3}, nil })
	defer restore()

	cfg := bench.DefaultConfig()
	if !reflect.DeepEqual(cfg.Cores, []int{2, 3}) {
		t.Errorf("cores under mask 2,3 = %v", cfg.Cores)
	}
}

func TestDefaultConfigFallsBackWithoutMask(t *testing.T) {
	for name, f := range map[string]func() ([]int, error){
		"error": func() ([]int, error) { return nil, api.ErrNotSupported },
		"empty": func() ([]int, error) { return nil, nil },
	} {
		restore := bench.SetAllowedCPUs(f)
		cfg := bench.DefaultConfig()
		restore()
		if len(cfg.Cores) != runtime.NumCPU() {
			t.Errorf("%s: cores = %v, want 0..%d", name, cfg.Cores, runtime.NumCPU()-1)
			continue
		}
		for i, c := range cfg.Cores {
			if c != i {
				t.Errorf("%s: cores = %v", name, cfg.Cores)
				break
			}
		}
	}
}

func TestConfigValidate(t *testing.T) {
	valid := func() *bench.Config {
		cfg := bench.DefaultConfig()
		cfg.ApplyArgs(bench.Args{Policy: api.PolicyFifo, Rounds: 1, Iterations: 1, Numbers: []int{1}})
		cfg.Cores = []int{0, 1}
		return cfg
	}
	if err := valid().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
	mutations := map[string]func(*bench.Config){
		"no numbers":      func(c *bench.Config) { c.Numbers = nil },
		"negative rounds": func(c *bench.Config) { c.Rounds = -1 },
		"no cores":        func(c *bench.Config) { c.Cores = nil },
		"duplicate core":  func(c *bench.Config) { c.Cores = []int{1, 1} },
		"negative core":   func(c *bench.Config) { c.Cores = []int{-2} },
		"zero threads":    func(c *bench.Config) { c.ThreadsPerCore = 0 },
		"bad group mode":  func(c *bench.Config) { c.Groups = bench.GroupMode(42) },
		"bad tier table":  func(c *bench.Config) { c.TierTable.RealTime = []int{0} },
	}
	for name, mutate := range mutations {
		cfg := valid()
		mutate(cfg)
		if err := cfg.Validate(); api.CodeOf(err) != api.ErrCodeConfig {
			t.Errorf("%s: Validate() = %v", name, err)
		}
	}
}

func TestConfigApplyProfile(t *testing.T) {
	p, err := control.ParseProfile([]byte(`
cores: [2, 3]
threads_per_core: 3
groups: tier
tier_mode: core
tiers:
  realtime: [80, 20]
  coordinator_realtime: 5
coordinator:
  mode: shared
  core: 0
affinity_strict: false
`))
	if err != nil {
		t.Fatal(err)
	}
	cfg := bench.DefaultConfig()
	if err := cfg.ApplyProfile(p); err != nil {
		t.Fatalf("ApplyProfile error: %v", err)
	}
	if len(cfg.Cores) != 2 || cfg.Cores[0] != 2 || cfg.ThreadsPerCore != 3 {
		t.Errorf("grid = %v x %d", cfg.Cores, cfg.ThreadsPerCore)
	}
	if cfg.Groups != bench.GroupTier || cfg.Tiers != bench.TierByCore {
		t.Errorf("modes = %v/%v", cfg.Groups, cfg.Tiers)
	}
	if cfg.TierTable.RealTime[1] != 20 || cfg.TierTable.CoordinatorRealTime != 5 {
		t.Errorf("tier table = %+v", cfg.TierTable)
	}
	if cfg.TierTable.Nice[0] != -20 {
		t.Error("nice table should keep its default")
	}
	if cfg.Coordinator != bench.CoordinatorShared || cfg.CoordinatorCore != 0 || cfg.AffinityStrict {
		t.Errorf("coordinator = %v core %d strict %v", cfg.Coordinator, cfg.CoordinatorCore, cfg.AffinityStrict)
	}
}

func TestConfigApplyProfileBadMode(t *testing.T) {
	cfg := bench.DefaultConfig()
	err := cfg.ApplyProfile(&control.Profile{Groups: "everyone"})
	if api.CodeOf(err) != api.ErrCodeConfig {
		t.Errorf("ApplyProfile = %v", err)
	}
}
