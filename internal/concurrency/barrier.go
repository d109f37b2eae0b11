// File: internal/concurrency/barrier.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
//
// RendezvousBarrier is a reusable counting barrier with a generation stamp.
// Counters are padded onto separate cache lines so arrivals do not
// invalidate the line every spinner is polling.

package concurrency

import (
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// RendezvousBarrier releases a fixed-size party of threads simultaneously.
// It is reusable across rounds without reset and never blocks in the kernel.
type RendezvousBarrier struct {
	_          cpu.CacheLinePad
	arrived    atomic.Uint32
	_          cpu.CacheLinePad
	generation atomic.Uint64
	_          cpu.CacheLinePad
	required   uint32
}

// NewRendezvousBarrier creates a barrier for parties participants.
// Panics if parties <= 0.
func NewRendezvousBarrier(parties int) *RendezvousBarrier {
	if parties <= 0 {
		panic("concurrency: barrier parties must be positive")
	}
	return &RendezvousBarrier{required: uint32(parties)}
}

// Wait spins until all parties of the current generation have arrived and
// returns the generation the caller was released into. The last arriver
// resets the arrival count and advances the generation; a single-party
// barrier therefore returns at once.
func (b *RendezvousBarrier) Wait() uint64 {
	// Must be read before arriving: once the count reaches required the
	// generation may advance at any moment.
	gen := b.generation.Load()
	if b.arrived.Add(1) == b.required {
		b.arrived.Store(0)
		return b.generation.Add(1)
	}
	for {
		if next := b.generation.Load(); next != gen {
			return next
		}
	}
}

// Generation returns the number of completed rendezvous cycles.
func (b *RendezvousBarrier) Generation() uint64 {
	return b.generation.Load()
}

// Parties returns the participant count.
func (b *RendezvousBarrier) Parties() int {
	return int(b.required)
}

// Arrived returns how many parties are waiting in the current generation.
func (b *RendezvousBarrier) Arrived() int {
	return int(b.arrived.Load())
}
