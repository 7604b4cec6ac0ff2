package day06

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/st3v3nmw/aoc2023/internal/puzzle"
	"github.com/st3v3nmw/aoc2023/pkg/aoc"
)

const example = `Time:      7  15   30
Distance:  9  40  200
`

func TestParseRaces(t *testing.T) {
	got, err := ParseRaces(example)
	if err != nil {
		t.Fatal(err)
	}
	want := []Race{{Time: 7, Distance: 9}, {Time: 15, Distance: 40}, {Time: 30, Distance: 200}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseRaces mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRacesErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{in: "Time: 7\n", want: ErrLineCount},
		{in: "Duration: 7\nDistance: 9\n", want: ErrMissingTimes},
		{in: "Time: 7\nRecord: 9\n", want: ErrMissingDists},
		{in: "Time: 7 x\nDistance: 9 1\n", want: ErrInvalidNumber},
		{in: "Time: 7 15\nDistance: 9\n", want: ErrMismatch},
	}

	for _, tt := range tests {
		if _, err := ParseRaces(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("ParseRaces(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestWinningHolds(t *testing.T) {
	tests := []struct {
		race Race
		want aoc.Span[int]
	}{
		{race: Race{Time: 7, Distance: 9}, want: aoc.Span[int]{Start: 2, End: 6}},
		{race: Race{Time: 15, Distance: 40}, want: aoc.Span[int]{Start: 4, End: 12}},
		{race: Race{Time: 30, Distance: 200}, want: aoc.Span[int]{Start: 11, End: 20}},
		{race: Race{Time: 3, Distance: 100}, want: aoc.Span[int]{}},
	}

	for _, tt := range tests {
		if got := tt.race.WinningHolds(); got != tt.want {
			t.Errorf("%+v.WinningHolds() = %v, want %v", tt.race, got, tt.want)
		}
	}
}

func TestFixKerning(t *testing.T) {
	want := "Time: 71530\nDistance: 940200"
	if got := FixKerning(example); got != want {
		t.Errorf("FixKerning() = %q, want %q", got, want)
	}
}

func TestSolve(t *testing.T) {
	got, err := Solve(context.Background(), example)
	if err != nil {
		t.Fatal(err)
	}
	if want := puzzle.New(288, 71503); got != want {
		t.Errorf("Solve() = %+v, want %+v", got, want)
	}
}
