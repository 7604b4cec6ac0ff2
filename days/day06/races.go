// Package day06 counts the ways to beat toy boat race records.
package day06

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/st3v3nmw/aoc2023/internal/puzzle"
	"github.com/st3v3nmw/aoc2023/pkg/aoc"
)

var (
	ErrLineCount     = errors.New("unexpected number of lines (expecting 2)")
	ErrMissingTimes  = errors.New("missing times")
	ErrMissingDists  = errors.New("missing distances")
	ErrInvalidNumber = errors.New("invalid number")
	ErrMismatch      = errors.New("mismatch in number of times and distances")
)

// Race is a record: the race duration and the best distance so far.
type Race struct {
	Time, Distance int
}

func Solve(ctx context.Context, input string) (puzzle.Solution, error) {
	races, err := ParseRaces(input)
	if err != nil {
		return puzzle.Solution{}, err
	}
	single, err := ParseRaces(FixKerning(input))
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.New(WaysToWin(races), WaysToWin(single)), nil
}

// ParseRaces reads the "Time:" and "Distance:" lines.
func ParseRaces(input string) ([]Race, error) {
	lines := puzzle.Lines(input)
	if len(lines) != 2 {
		return nil, fmt.Errorf("%w: got %d", ErrLineCount, len(lines))
	}

	times, ok := strings.CutPrefix(lines[0], "Time:")
	if !ok {
		return nil, ErrMissingTimes
	}
	dists, ok := strings.CutPrefix(lines[1], "Distance:")
	if !ok {
		return nil, ErrMissingDists
	}

	ts, err := aoc.Ints(times)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}
	ds, err := aoc.Ints(dists)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidNumber, err)
	}
	if len(ts) != len(ds) {
		return nil, fmt.Errorf("%w: %d times, %d distances", ErrMismatch, len(ts), len(ds))
	}

	races := make([]Race, len(ts))
	for i := range ts {
		races[i] = Race{Time: ts[i], Distance: ds[i]}
	}
	return races, nil
}

// FixKerning drops the spaces between the digits of each line, turning the
// sheet into a single race.
func FixKerning(input string) string {
	var out []string
	for _, line := range puzzle.Lines(input) {
		key, values, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		out = append(out, key+": "+strings.Join(strings.Fields(values), ""))
	}
	return strings.Join(out, "\n")
}

// Covers returns the distance travelled after holding the button for hold ms.
func (r Race) Covers(hold int) int {
	return (r.Time - hold) * hold
}

func (r Race) Wins(hold int) bool {
	return r.Covers(hold) > r.Distance
}

// WinningHolds returns the half-open range of hold times that beat the record.
// They lie strictly between the roots of h^2 - Th + D = 0; the float roots
// are nudged onto the integer winners.
func (r Race) WinningHolds() aoc.Span[int] {
	lo, hi, err := aoc.SolveQuad(1, -r.Time, r.Distance)
	if err != nil {
		return aoc.Span[int]{}
	}

	first := int(math.Ceil(lo))
	if !r.Wins(first) {
		first++
	}
	end := int(math.Floor(hi))
	if r.Wins(end) {
		end++
	}
	if end < first {
		return aoc.Span[int]{}
	}
	return aoc.Span[int]{Start: first, End: end}
}

// WaysToWin multiplies the number of winning hold times of every race.
func WaysToWin(races []Race) int {
	ways := make([]int, len(races))
	for i, r := range races {
		ways[i] = r.WinningHolds().Len()
	}
	return aoc.Product(ways...)
}
