// Package day05 follows seeds through the almanac's chain of range maps.
package day05

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
	"github.com/st3v3nmw/aoc2023/internal/puzzle"
	"github.com/st3v3nmw/aoc2023/pkg/aoc"
)

var (
	ErrMissingSeeds  = errors.New("missing seeds")
	ErrOddSeeds      = errors.New("insufficient seed numbers for seed range")
	ErrMissingBlank  = errors.New("missing blank line after seeds")
	ErrMissingHeader = errors.New("missing map header")
	ErrInvalidRange  = errors.New("invalid range")
	ErrNoSeeds       = errors.New("no seeds found")
)

// Stages lists the maps in the order a seed passes through them.
var Stages = []string{
	"seed-to-soil",
	"soil-to-fertilizer",
	"fertilizer-to-water",
	"water-to-light",
	"light-to-temperature",
	"temperature-to-humidity",
	"humidity-to-location",
}

type Span = aoc.Span[int]

// RangeMap sends [Src, Src+Len) to [Dst, Dst+Len).
type RangeMap struct {
	Dst, Src, Len int
}

func (r RangeMap) In() Span {
	return Span{Start: r.Src, End: r.Src + r.Len}
}

// Map is one almanac section. Ranges are sorted by source start.
type Map struct {
	Name   string
	Ranges []RangeMap
}

type Almanac struct {
	Seeds []int
	Maps  []Map
}

func Solve(ctx context.Context, input string) (puzzle.Solution, error) {
	a, err := ParseAlmanac(input)
	if err != nil {
		return puzzle.Solution{}, err
	}

	var locations []int
	for _, s := range a.Seeds {
		locations = append(locations, a.Location(s))
	}
	part1, ok := aoc.Min(locations...)
	if !ok {
		return puzzle.Solution{}, ErrNoSeeds
	}

	seedRanges, err := a.SeedRanges()
	if err != nil {
		return puzzle.Solution{}, err
	}

	log := zerolog.Ctx(ctx)
	var starts []int
	for _, sr := range seedRanges {
		out := a.LocationRanges(sr)
		log.Debug().Stringer("seeds", sr).Int("location_ranges", len(out)).Msg("mapped seed range")
		for _, r := range out {
			starts = append(starts, r.Start)
		}
	}
	part2, ok := aoc.Min(starts...)
	if !ok {
		return puzzle.Solution{}, ErrNoSeeds
	}

	return puzzle.New(part1, part2), nil
}

func ParseAlmanac(input string) (*Almanac, error) {
	lines := puzzle.Lines(input)
	if len(lines) == 0 {
		return nil, ErrMissingSeeds
	}

	seeds, ok := strings.CutPrefix(lines[0], "seeds: ")
	if !ok {
		return nil, ErrMissingSeeds
	}
	a := &Almanac{}
	var err error
	if a.Seeds, err = aoc.Ints(seeds); err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}

	if len(lines) < 2 || lines[1] != "" {
		return nil, ErrMissingBlank
	}

	rest := lines[2:]
	for _, name := range Stages {
		var m Map
		m, rest, err = parseMap(rest, name)
		if err != nil {
			return nil, err
		}
		a.Maps = append(a.Maps, m)
	}

	return a, nil
}

// parseMap consumes a header and its ranges up to the next blank line.
func parseMap(lines []string, name string) (Map, []string, error) {
	header := name + " map:"
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != header {
		return Map{}, nil, fmt.Errorf("%w: %s", ErrMissingHeader, name)
	}

	m := Map{Name: name}
	i := 1
	for ; i < len(lines) && lines[i] != ""; i++ {
		nums, err := aoc.Ints(lines[i])
		if err != nil || len(nums) != 3 || slices.Min(nums) < 0 || nums[2] == 0 {
			return Map{}, nil, fmt.Errorf("%w in %s: %q", ErrInvalidRange, name, lines[i])
		}
		m.Ranges = append(m.Ranges, RangeMap{Dst: nums[0], Src: nums[1], Len: nums[2]})
	}
	slices.SortFunc(m.Ranges, func(a, b RangeMap) int { return a.Src - b.Src })

	if i < len(lines) {
		i++ // blank separator
	}
	return m, lines[i:], nil
}

// SeedRanges reads the seeds as (start, length) pairs.
func (a *Almanac) SeedRanges() ([]Span, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, ErrOddSeeds
	}

	var out []Span
	for i := 0; i < len(a.Seeds); i += 2 {
		out = append(out, Span{Start: a.Seeds[i], End: a.Seeds[i] + a.Seeds[i+1]})
	}
	return out, nil
}

// Location runs a single seed through every map.
func (a *Almanac) Location(seed int) int {
	v := seed
	for _, m := range a.Maps {
		v = m.Apply(v)
	}
	return v
}

// LocationRanges runs a range of seeds through every map.
func (a *Almanac) LocationRanges(seeds Span) []Span {
	ranges := []Span{seeds}
	for _, m := range a.Maps {
		var next []Span
		for _, r := range ranges {
			next = append(next, m.ApplyRange(r)...)
		}
		ranges = next
	}
	return ranges
}

// Apply maps one value. Values outside every range map to themselves.
func (m Map) Apply(v int) int {
	for _, r := range m.Ranges {
		if r.In().Contains(v) {
			return r.Dst + v - r.Src
		}
	}
	return v
}

// ApplyRange maps a span, splitting it wherever it crosses a range boundary.
// Empty ranges map nothing and are ignored.
func (m Map) ApplyRange(s Span) []Span {
	var out []Span

	pos := s.Start
	for pos < s.End {
		idx := slices.IndexFunc(m.Ranges, func(r RangeMap) bool {
			return r.Len > 0 && (r.Src >= pos || r.In().Contains(pos))
		})
		if idx < 0 {
			out = append(out, Span{Start: pos, End: s.End})
			break
		}

		r := m.Ranges[idx]
		if r.In().Contains(pos) {
			end := min(r.In().End, s.End)
			out = append(out, Span{Start: r.Dst + pos - r.Src, End: r.Dst + end - r.Src})
			pos = end
		} else {
			end := min(r.Src, s.End)
			out = append(out, Span{Start: pos, End: end})
			pos = end
		}
	}
	return out
}
