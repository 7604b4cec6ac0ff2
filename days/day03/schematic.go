// Package day03 reads part numbers off an engine schematic.
package day03

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/st3v3nmw/aoc2023/internal/puzzle"
	"github.com/st3v3nmw/aoc2023/pkg/aoc"
)

// Number is a run of digits on one line of the schematic.
type Number struct {
	Value int
	Line  int
	Span  aoc.Span[int]
}

// Symbol is any character that is neither a digit nor '.'.
type Symbol struct {
	Char rune
	Line int
	Col  int
}

var ErrInvalidNumber = errors.New("invalid part number")

type Schematic struct {
	Numbers []Number
	Symbols []Symbol
}

func Solve(ctx context.Context, input string) (puzzle.Solution, error) {
	s, err := ParseSchematic(input)
	if err != nil {
		return puzzle.Solution{}, err
	}

	parts := s.PartNumbers()
	zerolog.Ctx(ctx).Debug().Int("part_numbers", len(parts)).Msg("found active part numbers")

	sum := 0
	for _, n := range parts {
		sum += n.Value
	}

	return puzzle.New(sum, aoc.Sum(s.GearRatios()...)), nil
}

func ParseSchematic(input string) (*Schematic, error) {
	s := &Schematic{}
	for y, line := range puzzle.Lines(input) {
		for x := 0; x < len(line); {
			c := line[x]
			switch {
			case c >= '0' && c <= '9':
				end := x
				for end < len(line) && line[end] >= '0' && line[end] <= '9' {
					end++
				}
				v, err := strconv.Atoi(line[x:end])
				if err != nil {
					return nil, fmt.Errorf("%w on line %d: %v", ErrInvalidNumber, y+1, err)
				}
				s.Numbers = append(s.Numbers, Number{Value: v, Line: y, Span: aoc.Span[int]{Start: x, End: end}})
				x = end
			case c == '.':
				x++
			default:
				s.Symbols = append(s.Symbols, Symbol{Char: rune(c), Line: y, Col: x})
				x++
			}
		}
	}
	return s, nil
}

// Touches reports whether the symbol is next to n, diagonals included.
func (sym Symbol) Touches(n Number) bool {
	if sym.Line < n.Line-1 || sym.Line > n.Line+1 {
		return false
	}
	around := aoc.Span[int]{Start: n.Span.Start - 1, End: n.Span.End + 1}
	return around.Contains(sym.Col)
}

// PartNumbers returns the numbers adjacent to at least one symbol, in
// reading order.
func (s *Schematic) PartNumbers() []Number {
	var out []Number
	for _, n := range s.Numbers {
		for _, sym := range s.Symbols {
			if sym.Touches(n) {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

// GearRatios returns, for every '*' next to exactly two numbers, the
// product of those numbers.
func (s *Schematic) GearRatios() []int {
	var out []int
	for _, sym := range s.Symbols {
		if sym.Char != '*' {
			continue
		}

		var adjacent []int
		for _, n := range s.Numbers {
			if sym.Touches(n) {
				adjacent = append(adjacent, n.Value)
			}
		}
		if len(adjacent) == 2 {
			out = append(out, adjacent[0]*adjacent[1])
		}
	}
	return out
}
