//go:build linux
// +build linux

// File: affinity/affinity_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux-specific implementation for setting thread CPU affinity.

package affinity

import (
	"golang.org/x/sys/unix"
)

// bindPlatform restricts the current thread (pid 0) to cpuID.
func bindPlatform(cpuID int) error {
	var mask unix.CPUSet
	mask.Zero()
	mask.Set(cpuID)
	if mask.Count() == 0 {
		// CPUSet silently drops ids beyond its capacity.
		return unix.EINVAL
	}
	return unix.SchedSetaffinity(0, &mask)
}

func allowedPlatform() ([]int, error) {
	var mask unix.CPUSet
	if err := unix.SchedGetaffinity(0, &mask); err != nil {
		return nil, err
	}
	n := mask.Count()
	cpus := make([]int, 0, n)
	for i := 0; len(cpus) < n; i++ {
		if mask.IsSet(i) {
			cpus = append(cpus, i)
		}
	}
	return cpus, nil
}
