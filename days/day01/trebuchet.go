// Package day01 recovers calibration values from an amended document.
package day01

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/st3v3nmw/aoc2023/internal/puzzle"
	"github.com/st3v3nmw/aoc2023/pkg/aoc"
)

var ErrNoDigits = errors.New("no digits found")

var spelled = []string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

func Solve(ctx context.Context, input string) (puzzle.Solution, error) {
	lines := puzzle.Lines(input)

	part1, err := SumCalibrationValues(lines, false)
	if err != nil {
		return puzzle.Solution{}, err
	}
	part2, err := SumCalibrationValues(lines, true)
	if err != nil {
		return puzzle.Solution{}, err
	}

	return puzzle.New(part1, part2), nil
}

// SumCalibrationValues adds up the value recovered from every line. With
// words set, spelled-out digits count as digits too.
func SumCalibrationValues(lines []string, words bool) (int, error) {
	sum := 0
	for i, line := range lines {
		v, err := CalibrationValue(line, words)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", i+1, err)
		}
		sum += v
	}
	return sum, nil
}

// CalibrationValue combines the first and last digit of a line.
func CalibrationValue(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := range line {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}

	if first < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigits, line)
	}
	return first*10 + last, nil
}

// digitAt reports the digit starting at byte offset i. Spelled digits may
// overlap, so "eightwo" has a digit at offset 0 and at offset 4.
func digitAt(line string, i int, words bool) (int, bool) {
	if d, ok := aoc.Digit(rune(line[i])); ok {
		return d, true
	}
	if !words {
		return 0, false
	}

	for n, w := range spelled {
		if strings.HasPrefix(line[i:], w) {
			return n + 1, true
		}
	}
	return 0, false
}
