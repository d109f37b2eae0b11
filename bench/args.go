// File: bench/args.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package bench

import (
	"fmt"
	"strconv"

	"github.com/momentics/schedbench/api"
)

// Usage is the positional argument synopsis.
const Usage = "<policy> <rounds> <iterations> <number>+"

// Args is the validated positional command line.
type Args struct {
	Policy     api.Policy
	Rounds     int
	Iterations int
	Numbers    []int
}

// ParseArgs validates the positional arguments. Every failure is an
// ErrCodeUsage error; nothing is started on invalid input.
func ParseArgs(args []string) (Args, error) {
	if len(args) < 4 {
		return Args{}, api.NewError(api.ErrCodeUsage,
			fmt.Sprintf("expected at least 4 arguments, got %d", len(args)))
	}
	policy, err := api.ParsePolicy(args[0])
	if err != nil {
		return Args{}, err
	}
	rounds, err := parseCount(args[1])
	if err != nil {
		return Args{}, err
	}
	iters, err := parseCount(args[2])
	if err != nil {
		return Args{}, err
	}
	numbers := make([]int, 0, len(args)-3)
	for _, s := range args[3:] {
		n, err := parseInt(s)
		if err != nil {
			return Args{}, err
		}
		numbers = append(numbers, n)
	}
	return Args{Policy: policy, Rounds: rounds, Iterations: iters, Numbers: numbers}, nil
}

func parseInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, api.NewError(api.ErrCodeUsage, fmt.Sprintf("could not parse %q as an integer", s))
	}
	return n, nil
}

func parseCount(s string) (int, error) {
	n, err := parseInt(s)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, api.NewError(api.ErrCodeUsage, fmt.Sprintf("%q must not be negative", s))
	}
	return n, nil
}
