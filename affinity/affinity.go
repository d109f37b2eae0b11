// File: affinity/affinity.go
// Author: momentics <momentics@gmail.com>
//
// Platform-neutral API for CPU affinity. Platform-specific implementations are located
// in separate files (affinity_linux.go, affinity_stub.go) guarded by build tags.

package affinity

import (
	"fmt"

	"github.com/momentics/schedbench/api"
)

// Bind pins the calling OS thread to the given logical CPU. The caller must
// hold runtime.LockOSThread for the binding to stay attached to its goroutine.
// OS failures are returned as *api.Error with ErrCodeAffinity wrapping the errno.
func Bind(coreID int) error {
	if coreID < 0 {
		return api.WrapError(api.ErrCodeAffinity, fmt.Sprintf("affinity: invalid core %d", coreID), api.ErrInvalidArgument).
			WithContext("core", coreID)
	}
	if err := bindPlatform(coreID); err != nil {
		return api.WrapError(api.ErrCodeAffinity, fmt.Sprintf("affinity: bind to core %d failed", coreID), err).
			WithContext("core", coreID)
	}
	return nil
}

// Allowed returns the logical CPUs the calling thread may currently run on.
func Allowed() ([]int, error) {
	return allowedPlatform()
}

// NewBinder returns the OS-backed api.Binder.
func NewBinder() api.Binder {
	return api.BinderFunc(Bind)
}
