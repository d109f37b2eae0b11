//go:build !linux
// +build !linux

// File: affinity/affinity_stub.go
// Author: momentics <momentics@gmail.com>
//
// Stub implementation for unsupported platforms.
// Returns error to indicate unavailability.

package affinity

import "github.com/momentics/schedbench/api"

func bindPlatform(cpuID int) error {
	return api.ErrNotSupported
}

func allowedPlatform() ([]int, error) {
	return nil, api.ErrNotSupported
}
