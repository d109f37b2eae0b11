package concurrency

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/momentics/schedbench/api"
)

func TestWorkSourceRejectsEmpty(t *testing.T) {
	if _, err := NewWorkSource(nil); !errors.Is(err, api.ErrEmptySource) {
		t.Fatalf("NewWorkSource(nil) error = %v", err)
	}
}

func TestWorkSourceRoundRobinWraps(t *testing.T) {
	values := []int{7, 3, 9, 3}
	s, err := NewWorkSource(values)
	if err != nil {
		t.Fatal(err)
	}
	for cycle := 0; cycle < 3; cycle++ {
		for i, want := range values {
			if got := s.Next(); got != want {
				t.Fatalf("cycle %d draw %d = %d, want %d", cycle, i, got, want)
			}
		}
	}
	if d := s.Draws(); d != uint64(3*len(values)) {
		t.Errorf("Draws() = %d", d)
	}
}

func TestWorkSourceCopiesInput(t *testing.T) {
	in := []int{1, 2}
	s, _ := NewWorkSource(in)
	in[0] = 100
	if v := s.Next(); v != 1 {
		t.Errorf("source observed caller mutation: %d", v)
	}
}

func TestWorkSourceConcurrentDrawsAreExact(t *testing.T) {
	const (
		threads = 8
		perT    = 5000
	)
	values := []int{0, 1, 2, 3, 4, 5, 6}
	s, _ := NewWorkSource(values)

	counts := make([][]int, threads)
	var wg sync.WaitGroup
	for th := 0; th < threads; th++ {
		counts[th] = make([]int, len(values))
		wg.Add(1)
		go func(th int) {
			defer wg.Done()
			for r := 0; r < perT; r++ {
				counts[th][s.Next()]++
			}
		}(th)
	}
	waitOrFail(t, &wg, 10*time.Second)

	total := threads * perT
	if d := s.Draws(); d != uint64(total) {
		t.Fatalf("Draws() = %d, want %d", d, total)
	}
	// Strict round-robin over total draws hands the first total%L values
	// one extra time.
	for v := range values {
		sum := 0
		for th := range counts {
			sum += counts[th][v]
		}
		want := total / len(values)
		if v < total%len(values) {
			want++
		}
		if sum != want {
			t.Errorf("value %d drawn %d times, want %d", v, sum, want)
		}
	}
	// The cursor is back where strict round-robin would leave it.
	if next := s.Next(); next != values[total%len(values)] {
		t.Errorf("next after %d draws = %d", total, next)
	}
}

func TestBurnRuns(t *testing.T) {
	Burn(3, 1000)
	Burn(-5, 0)
	if cube(3) != 27 {
		t.Error("cube(3) != 27")
	}
}
