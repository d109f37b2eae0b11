// File: cmd/schedbench/main.go
// Author: momentics <momentics@gmail.com>
//
// schedbench pins a grid of CPU-bound worker threads to cores, gives them
// distinct priorities under one scheduling policy, and lets them contend
// for a shared round-robin work source. Timing is left to an external
// observer such as trace-cmd; on success nothing is printed.

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/momentics/schedbench/api"
	"github.com/momentics/schedbench/bench"
	"github.com/momentics/schedbench/control"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, launch))
}

// launch runs the benchmark described by cfg to completion.
func launch(cfg *bench.Config) error {
	dp := control.NewDebugProbes()
	control.RegisterPlatformProbes(dp)
	c, err := bench.New(cfg, bench.WithDebugProbes(dp))
	if err != nil {
		return err
	}
	log.Printf("[schedbench] probes: %s", dp)
	if err := c.Run(); err != nil {
		log.Printf("[schedbench] probes at failure: %s", dp)
		return err
	}
	if out, err := c.Metrics().MarshalJSON(); err == nil {
		log.Printf("[schedbench] metrics: %s", out)
	}
	return nil
}

// run parses args, validates everything, and only then calls start.
func run(args []string, stderr io.Writer, start func(*bench.Config) error) int {
	fs := flag.NewFlagSet("schedbench", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		profile     = fs.String("profile", "", "YAML profile with grid, group and tier settings")
		cores       = fs.String("cores", "", "comma-separated logical CPUs (default: all)")
		tpc         = fs.Int("threads-per-core", 0, "worker threads per core (default 1)")
		groups      = fs.String("groups", "", "barrier groups: all, tier, core or slot")
		tierMode    = fs.String("tier-mode", "", "tier assignment: slot, core or uniform")
		coordinator = fs.String("coordinator", "", "launcher policy: inherit or shared")
		coordCore   = fs.Int("coordinator-core", -2, "core for the launcher thread (-1: unbound)")
		lenient     = fs.Bool("lenient-affinity", false, "log core binding failures instead of aborting")
		verbose     = fs.Bool("v", false, "log progress to stderr")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: schedbench [flags] %s\n", bench.Usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}

	log.SetOutput(io.Discard)
	if *verbose {
		log.SetOutput(stderr)
	}

	pos, err := bench.ParseArgs(fs.Args())
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitUsage
	}

	cfg := bench.DefaultConfig()
	cfg.ApplyArgs(pos)
	if *profile != "" {
		p, err := control.LoadProfile(*profile)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitFatal
		}
		if err := cfg.ApplyProfile(p); err != nil {
			fmt.Fprintln(stderr, err)
			return exitFatal
		}
	}
	if err := applyFlags(cfg, *cores, *tpc, *groups, *tierMode, *coordinator, *coordCore, *lenient); err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return exitFatal
	}

	if err := start(cfg); err != nil {
		fmt.Fprintf(stderr, "schedbench: %s error: %v\n", api.CodeOf(err), err)
		return exitFatal
	}
	return exitOK
}

func applyFlags(cfg *bench.Config, cores string, tpc int, groups, tierMode, coordinator string, coordCore int, lenient bool) error {
	if cores != "" {
		list, err := parseCores(cores)
		if err != nil {
			return err
		}
		cfg.Cores = list
	}
	if tpc != 0 {
		cfg.ThreadsPerCore = tpc
	}
	if groups != "" {
		m, err := bench.ParseGroupMode(groups)
		if err != nil {
			return err
		}
		cfg.Groups = m
	}
	if tierMode != "" {
		m, err := bench.ParseTierMode(tierMode)
		if err != nil {
			return err
		}
		cfg.Tiers = m
	}
	if coordinator != "" {
		m, err := bench.ParseCoordinatorMode(coordinator)
		if err != nil {
			return err
		}
		cfg.Coordinator = m
	}
	if coordCore != -2 {
		cfg.CoordinatorCore = coordCore
	}
	if lenient {
		cfg.AffinityStrict = false
	}
	return nil
}

func parseCores(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, api.NewError(api.ErrCodeUsage, fmt.Sprintf("could not parse core %q", p))
		}
		out = append(out, n)
	}
	return out, nil
}
