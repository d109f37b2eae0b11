// File: internal/concurrency/worksource.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package concurrency

import (
	"sync"

	"github.com/momentics/schedbench/api"
)

// WorkSource hands out an immutable list of integers in round-robin order to
// any number of threads. Only the cursor is mutable, and only under mu.
type WorkSource struct {
	values []int

	mu     sync.Mutex
	cursor int
	draws  uint64
}

// NewWorkSource copies values into a new source. An empty list is rejected
// with api.ErrEmptySource.
func NewWorkSource(values []int) (*WorkSource, error) {
	if len(values) == 0 {
		return nil, api.ErrEmptySource
	}
	v := make([]int, len(values))
	copy(v, values)
	return &WorkSource{values: v}, nil
}

// Next returns the value at the cursor and advances it modulo the length.
// The critical section is the read and the increment only.
func (s *WorkSource) Next() int {
	s.mu.Lock()
	v := s.values[s.cursor]
	s.cursor++
	if s.cursor == len(s.values) {
		s.cursor = 0
	}
	s.draws++
	s.mu.Unlock()
	return v
}

// Draws returns the total number of Next calls so far.
func (s *WorkSource) Draws() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.draws
}

// Len returns the number of values in the cycle.
func (s *WorkSource) Len() int {
	return len(s.values)
}
