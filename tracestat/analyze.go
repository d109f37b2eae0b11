// File: tracestat/analyze.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package tracestat

import (
	"fmt"
	"io"
	"time"

	"github.com/momentics/schedbench/api"
)

// ThreadStat is the on-CPU time of one thread name inside the window.
type ThreadStat struct {
	Name   string        `json:"name"`
	OnCPU  time.Duration `json:"on_cpu_ns"`
	Share  float64       `json:"share"` // fraction of the window, 0..1 per CPU
	Slices int           `json:"slices"`
}

// Report is the result of analysing one capture over one window.
type Report struct {
	Digest      string        `json:"digest"`
	WindowStart time.Duration `json:"window_start_ns"`
	WindowStop  time.Duration `json:"window_stop_ns"`
	Lines       int           `json:"lines"`
	Events      int           `json:"events"`
	Threads     []ThreadStat  `json:"threads"`
}

type slice struct {
	name string
	in   time.Duration
}

// Analyze accounts on-CPU time for names within [start, stop]. A switch-in
// of a tracked name opens an interval on that CPU; the next switch-out of
// the same name on the same CPU closes it. Intervals still open at stop are
// closed at stop. Events outside the window are ignored. A name given more
// than once is reported once per occurrence with the same totals.
func Analyze(c *Capture, start, stop time.Duration, names []string) (*Report, error) {
	if stop <= start {
		return nil, api.NewError(api.ErrCodeTrace,
			fmt.Sprintf("tracestat: empty window [%v, %v]", start, stop))
	}
	tracked := make(map[string]*ThreadStat, len(names))
	for _, n := range names {
		if _, dup := tracked[n]; !dup {
			tracked[n] = &ThreadStat{Name: n}
		}
	}
	open := make(map[int]slice)

	closeSlice := func(cpu int, at time.Duration) {
		s, ok := open[cpu]
		if !ok {
			return
		}
		st := tracked[s.name]
		st.OnCPU += at - s.in
		st.Slices++
		delete(open, cpu)
	}

	events := 0
	for _, ev := range c.Events {
		if ev.Time < start || ev.Time > stop {
			continue
		}
		events++
		if s, ok := open[ev.CPU]; ok && s.name == ev.Comm {
			closeSlice(ev.CPU, ev.Time)
		}
		if _, ok := tracked[ev.Next]; ok {
			open[ev.CPU] = slice{name: ev.Next, in: ev.Time}
		}
	}
	for cpu := range open {
		closeSlice(cpu, stop)
	}

	window := stop - start
	stats := make([]ThreadStat, len(names))
	for i, n := range names {
		st := tracked[n]
		st.Share = float64(st.OnCPU) / float64(window)
		stats[i] = *st
	}
	return &Report{
		Digest:      c.Digest,
		WindowStart: start,
		WindowStop:  stop,
		Lines:       c.Lines,
		Events:      events,
		Threads:     stats,
	}, nil
}

// WriteText prints one line per thread: name, milliseconds, percent.
func (r *Report) WriteText(w io.Writer) error {
	for _, s := range r.Threads {
		ms := float64(s.OnCPU) / float64(time.Millisecond)
		if _, err := fmt.Fprintf(w, "%s %.3f ms %.3f%%\n", s.Name, ms, s.Share*100); err != nil {
			return err
		}
	}
	return nil
}
