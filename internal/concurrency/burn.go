// File: internal/concurrency/burn.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

// cube is kept out of line so the compiler cannot fold away the loop in Burn.
//
//go:noinline
func cube(v int) int {
	return v * v * v
}

// Burn occupies the current core for iters cube computations of v.
// The results are discarded.
func Burn(v, iters int) {
	for i := 0; i < iters; i++ {
		cube(v)
	}
}
