//go:build linux
// +build linux

// File: sched/assigner_linux.go
// Author: momentics <momentics@gmail.com>
//
// Linux implementation via sched_setattr(2) on the calling thread.

package sched

import (
	"golang.org/x/sys/unix"

	"github.com/momentics/schedbench/api"
)

func setPlatform(policy api.Policy, value int) error {
	attr := unix.SchedAttr{}
	switch policy {
	case api.PolicyRoundRobin:
		attr.Policy = unix.SCHED_RR
		attr.Priority = uint32(value)
	case api.PolicyFifo:
		attr.Policy = unix.SCHED_FIFO
		attr.Priority = uint32(value)
	default:
		attr.Policy = unix.SCHED_NORMAL
		attr.Nice = int32(value)
	}
	// pid 0 addresses the calling thread, not the whole process.
	return unix.SchedSetAttr(0, &attr, 0)
}
