package main

import (
	"bytes"
	"strings"
	"testing"
)

const trace = `       schedbench-501   [001]  10.000000: sched_switch:         schedbench:501 [139] R ==> spin:9 [120]
             spin-9     [001]  10.250000: sched_switch:         spin:9 [120] R ==> schedbench:501 [139]
`

func TestRunText(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"9.5", "10.5", "spin"}, strings.NewReader(trace), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	if got := stdout.String(); got != "spin 250.000 ms 25.000%\n" {
		t.Errorf("stdout = %q", got)
	}
}

func TestRunJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-json", "9.5", "10.5", "spin"}, strings.NewReader(trace), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit %d: %s", code, stderr.String())
	}
	if !strings.Contains(stdout.String(), `"name":"spin","on_cpu_ns":250000000,"share":0.25`) {
		t.Errorf("stdout = %s", stdout.String())
	}
}

func TestRunUsage(t *testing.T) {
	for _, args := range [][]string{{"1", "2"}, {"a", "2", "x"}} {
		var stdout, stderr bytes.Buffer
		if code := run(args, strings.NewReader(""), &stdout, &stderr); code != 2 {
			t.Errorf("run(%v) = %d, want 2", args, code)
		}
	}
}

func TestRunEmptyWindow(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"5", "5", "x"}, strings.NewReader(trace), &stdout, &stderr); code != 1 {
		t.Errorf("exit %d, want 1", code)
	}
}
