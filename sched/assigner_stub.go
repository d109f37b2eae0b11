//go:build !linux
// +build !linux

// File: sched/assigner_stub.go
// Author: momentics <momentics@gmail.com>

package sched

import "github.com/momentics/schedbench/api"

func setPlatform(policy api.Policy, value int) error {
	return api.ErrNotSupported
}
