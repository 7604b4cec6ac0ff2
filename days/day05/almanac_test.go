package day05

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/st3v3nmw/aoc2023/internal/puzzle"
)

const example = `seeds: 79 14 55 13

seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15

fertilizer-to-water map:
49 53 8
0 11 42
42 0 7
57 7 4

water-to-light map:
88 18 7
18 25 70

light-to-temperature map:
45 77 23
81 45 19
68 64 13

temperature-to-humidity map:
0 69 1
1 0 69

humidity-to-location map:
60 56 37
56 93 4
`

func exampleAlmanac(t *testing.T) *Almanac {
	t.Helper()

	a, err := ParseAlmanac(example)
	if err != nil {
		t.Fatal(err)
	}
	return a
}

func TestParseAlmanac(t *testing.T) {
	a := exampleAlmanac(t)

	if diff := cmp.Diff([]int{79, 14, 55, 13}, a.Seeds); diff != "" {
		t.Errorf("seeds mismatch (-want +got):\n%s", diff)
	}

	var sizes []int
	for _, m := range a.Maps {
		sizes = append(sizes, len(m.Ranges))
	}
	if diff := cmp.Diff([]int{2, 3, 4, 2, 3, 2, 2}, sizes); diff != "" {
		t.Errorf("map sizes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseAlmanacErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{name: "empty", in: "", want: ErrMissingSeeds},
		{name: "no seeds prefix", in: "plants: 1 2\n", want: ErrMissingSeeds},
		{name: "no blank", in: "seeds: 1 2\nseed-to-soil map:\n", want: ErrMissingBlank},
		{name: "wrong header", in: "seeds: 1 2\n\nsoil-to-fertilizer map:\n1 2 3\n", want: ErrMissingHeader},
		{name: "short range", in: "seeds: 1 2\n\nseed-to-soil map:\n1 2\n", want: ErrInvalidRange},
		{name: "zero length", in: "seeds: 1 2\n\nseed-to-soil map:\n100 5 0\n", want: ErrInvalidRange},
		{name: "negative length", in: "seeds: 1 2\n\nseed-to-soil map:\n100 5 -3\n", want: ErrInvalidRange},
		{name: "negative start", in: "seeds: 1 2\n\nseed-to-soil map:\n100 -5 3\n", want: ErrInvalidRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseAlmanac(tt.in); !errors.Is(err, tt.want) {
				t.Errorf("ParseAlmanac error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestSeedToSoil(t *testing.T) {
	m := exampleAlmanac(t).Maps[0]
	for seed, want := range map[int]int{79: 81, 14: 14, 55: 57, 13: 13} {
		if got := m.Apply(seed); got != want {
			t.Errorf("Apply(%d) = %d, want %d", seed, got, want)
		}
	}
}

func TestLocation(t *testing.T) {
	a := exampleAlmanac(t)
	want := []int{82, 43, 86, 35}
	for i, seed := range a.Seeds {
		if got := a.Location(seed); got != want[i] {
			t.Errorf("Location(%d) = %d, want %d", seed, got, want[i])
		}
	}
}

func TestApplyRange(t *testing.T) {
	m := exampleAlmanac(t).Maps[0]

	tests := []struct {
		in   Span
		want []Span
	}{
		{in: Span{Start: 96, End: 103}, want: []Span{{Start: 98, End: 100}, {Start: 50, End: 52}, {Start: 100, End: 103}}},
		{in: Span{Start: 79, End: 93}, want: []Span{{Start: 81, End: 95}}},
		{in: Span{Start: 10, End: 20}, want: []Span{{Start: 10, End: 20}}},
		{in: Span{Start: 45, End: 55}, want: []Span{{Start: 45, End: 50}, {Start: 52, End: 57}}},
	}

	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, m.ApplyRange(tt.in)); diff != "" {
			t.Errorf("ApplyRange(%v) mismatch (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestApplyRangeSkipsEmptyRanges(t *testing.T) {
	m := Map{Ranges: []RangeMap{{Dst: 100, Src: 5, Len: 0}, {Dst: 200, Src: 8, Len: 2}}}

	done := make(chan []Span, 1)
	go func() { done <- m.ApplyRange(Span{Start: 0, End: 10}) }()

	select {
	case got := <-done:
		want := []Span{{Start: 0, End: 8}, {Start: 200, End: 202}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("ApplyRange mismatch (-want +got):\n%s", diff)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("ApplyRange did not return")
	}
}

func TestSeedRanges(t *testing.T) {
	got, err := exampleAlmanac(t).SeedRanges()
	if err != nil {
		t.Fatal(err)
	}
	want := []Span{{Start: 79, End: 93}, {Start: 55, End: 68}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("SeedRanges mismatch (-want +got):\n%s", diff)
	}

	odd := &Almanac{Seeds: []int{1, 2, 3}}
	if _, err := odd.SeedRanges(); !errors.Is(err, ErrOddSeeds) {
		t.Errorf("SeedRanges error = %v, want ErrOddSeeds", err)
	}
}

func TestSolve(t *testing.T) {
	got, err := Solve(context.Background(), example)
	if err != nil {
		t.Fatal(err)
	}
	if want := puzzle.New(35, 46); got != want {
		t.Errorf("Solve() = %+v, want %+v", got, want)
	}
}
