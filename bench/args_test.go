package bench_test

import (
	"reflect"
	"testing"

	"github.com/momentics/schedbench/api"
	"github.com/momentics/schedbench/bench"
)

func TestParseArgs(t *testing.T) {
	a, err := bench.ParseArgs([]string{"SCHED_RR", "3", "1000", "2", "4", "6"})
	if err != nil {
		t.Fatalf("ParseArgs error: %v", err)
	}
	want := bench.Args{Policy: api.PolicyRoundRobin, Rounds: 3, Iterations: 1000, Numbers: []int{2, 4, 6}}
	if !reflect.DeepEqual(a, want) {
		t.Errorf("ParseArgs = %+v, want %+v", a, want)
	}
}

func TestParseArgsPolicySynonyms(t *testing.T) {
	for name, want := range map[string]api.Policy{
		"SCHED_FIFO":   api.PolicyFifo,
		"SCHED_OTHER":  api.PolicyOther,
		"SCHED_NORMAL": api.PolicyOther,
	} {
		a, err := bench.ParseArgs([]string{name, "1", "1", "-5"})
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if a.Policy != want {
			t.Errorf("%s parsed as %s", name, a.Policy)
		}
	}
}

func TestParseArgsUsageErrors(t *testing.T) {
	cases := map[string][]string{
		"no args":       nil,
		"zero numbers":  {"SCHED_RR", "3", "1000"},
		"bogus policy":  {"SCHED_BOGUS", "3", "1000", "2"},
		"bad rounds":    {"SCHED_RR", "three", "1000", "2"},
		"bad iters":     {"SCHED_RR", "3", "1e3", "2"},
		"bad number":    {"SCHED_RR", "3", "1000", "2", "x"},
		"negative iter": {"SCHED_FIFO", "3", "-1", "2"},
	}
	for name, args := range cases {
		_, err := bench.ParseArgs(args)
		if err == nil {
			t.Errorf("%s: no error", name)
			continue
		}
		if code := api.CodeOf(err); code != api.ErrCodeUsage {
			t.Errorf("%s: code = %v (%v)", name, code, err)
		}
	}
}

func TestParseArgsBogusPolicyMessage(t *testing.T) {
	_, err := bench.ParseArgs([]string{"SCHED_BOGUS", "1", "1", "1"})
	if err == nil || err.Error() != `unknown scheduler type: "SCHED_BOGUS" (context: map[policy:SCHED_BOGUS])` {
		t.Errorf("error = %v", err)
	}
}
