// File: tracestat/parse.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package tracestat

import (
	"bufio"
	"bytes"
	"encoding/hex"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/sha3"

	"github.com/momentics/schedbench/api"
)

// SwitchEvent is one sched_switch record.
type SwitchEvent struct {
	Comm string // task running when the event fired (the one switched out)
	PID  int
	CPU  int
	Time time.Duration // since trace start
	Next string        // task switched in
}

// Capture is a parsed trace together with its content digest.
type Capture struct {
	Digest string
	Lines  int
	Events []SwitchEvent
}

var (
	// "<comm>-<pid> [<cpu>] <flags?> <secs>.<frac>: sched_switch: <prev> ==> <next>"
	switchLine = regexp.MustCompile(
		`^\s*(.+)-(\d+)\s+(?:\(\s*[\d-]+\)\s+)?\[(\d+)\]\s+(?:\S+\s+)?(\d+\.\d+):\s+sched_switch:\s*(.*?)==>\s*(.*)$`)
	// "<comm>:<pid> [<prio>]" as printed by the default report format.
	nextTask = regexp.MustCompile(`^(.*):(\d+)(?:\s|$)`)
)

// ParseLine decodes a sched_switch line. ok is false for any other line.
func ParseLine(line string) (ev SwitchEvent, ok bool) {
	m := switchLine.FindStringSubmatch(line)
	if m == nil {
		return ev, false
	}
	pid, err := strconv.Atoi(m[2])
	if err != nil {
		return ev, false
	}
	cpu, err := strconv.Atoi(m[3])
	if err != nil {
		return ev, false
	}
	ts, err := ParseTimestamp(m[4])
	if err != nil {
		return ev, false
	}
	next, ok := nextComm(strings.TrimSpace(m[6]))
	if !ok {
		return ev, false
	}
	return SwitchEvent{Comm: m[1], PID: pid, CPU: cpu, Time: ts, Next: next}, true
}

// ParseTimestamp converts a "<secs>[.<frac>]" trace timestamp to a duration
// without going through floating point. Digits past nanoseconds are dropped.
func ParseTimestamp(s string) (time.Duration, error) {
	secs, frac, _ := strings.Cut(s, ".")
	bad := func() error {
		return api.NewError(api.ErrCodeTrace, "tracestat: invalid timestamp").WithContext("value", s)
	}
	if secs == "" || !digitsOnly(secs) || !digitsOnly(frac) {
		return 0, bad()
	}
	sec, err := strconv.ParseInt(secs, 10, 64)
	if err != nil || sec > int64(math.MaxInt64/time.Second) {
		return 0, bad()
	}
	if len(frac) > 9 {
		frac = frac[:9]
	}
	var ns int64
	if frac != "" {
		ns, _ = strconv.ParseInt(frac+strings.Repeat("0", 9-len(frac)), 10, 64)
	}
	return time.Duration(sec)*time.Second + time.Duration(ns), nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// nextComm extracts the incoming task name from either the default
// "comm:pid [prio]" form or the raw "next_comm=... next_pid=..." form.
func nextComm(s string) (string, bool) {
	if rest, found := strings.CutPrefix(s, "next_comm="); found {
		name, _, found := strings.Cut(rest, " next_pid=")
		return name, found
	}
	m := nextTask.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// ReadCapture reads a whole trace, digests it and keeps every sched_switch
// event in input order.
func ReadCapture(r io.Reader) (*Capture, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, api.WrapError(api.ErrCodeTrace, "tracestat: read capture", err)
	}
	sum := sha3.Sum256(data)
	c := &Capture{Digest: hex.EncodeToString(sum[:])}

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		c.Lines++
		if ev, ok := ParseLine(sc.Text()); ok {
			c.Events = append(c.Events, ev)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, api.WrapError(api.ErrCodeTrace, "tracestat: scan capture", err).
			WithContext("line", c.Lines+1)
	}
	return c, nil
}
