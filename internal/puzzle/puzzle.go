// Package puzzle defines what a day's solver produces.
package puzzle

import (
	"context"
	"fmt"
	"strings"
)

// Solver computes the answers for one day from its raw input text.
// The context carries the logger; solvers do not block on it.
type Solver func(ctx context.Context, input string) (Solution, error)

// Solution holds the answers of one day. Part 2 may be absent.
type Solution struct {
	Part1    string
	Part2    string
	HasPart2 bool
}

// New returns a solution with both parts.
func New(part1, part2 any) Solution {
	return Solution{
		Part1:    fmt.Sprint(part1),
		Part2:    fmt.Sprint(part2),
		HasPart2: true,
	}
}

// Partial returns a solution with only the first part.
func Partial(part1 any) Solution {
	return Solution{Part1: fmt.Sprint(part1)}
}

// Part returns the answer for part 1 or 2.
func (s Solution) Part(n int) (string, bool) {
	switch {
	case n == 1:
		return s.Part1, true
	case n == 2 && s.HasPart2:
		return s.Part2, true
	}
	return "", false
}

func (s Solution) String() string {
	out := "part 1: " + s.Part1
	if s.HasPart2 {
		out += "\npart 2: " + s.Part2
	}
	return out
}

// Lines splits input into lines. A trailing newline does not produce an
// empty last line and carriage returns are dropped.
func Lines(input string) []string {
	input = strings.ReplaceAll(input, "\r", "")
	input = strings.TrimSuffix(input, "\n")
	if input == "" {
		return nil
	}
	return strings.Split(input, "\n")
}
