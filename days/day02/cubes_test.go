package day02

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/st3v3nmw/aoc2023/internal/puzzle"
)

const example = `Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green
Game 2: 1 blue, 2 green; 3 green, 4 blue, 1 red; 1 green, 1 blue
Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
Game 4: 1 green, 3 red, 6 blue; 3 green, 6 red; 3 green, 15 blue, 14 red
Game 5: 6 red, 1 blue, 3 green; 2 blue, 1 red, 2 green
`

func TestParseGame(t *testing.T) {
	got, err := ParseGame("Game 1: 3 blue, 4 red; 1 red, 2 green, 6 blue; 2 green")
	if err != nil {
		t.Fatal(err)
	}

	want := Game{
		ID: 1,
		Grabs: []Bag{
			{Red: 4, Blue: 3},
			{Red: 1, Green: 2, Blue: 6},
			{Green: 2},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseGame mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGameErrors(t *testing.T) {
	tests := []struct {
		in   string
		want error
	}{
		{in: "Game 1 3 blue", want: ErrMissingColon},
		{in: "Round 1: 3 blue", want: ErrMissingPrefix},
		{in: "Game x: 3 blue", want: ErrInvalidID},
		{in: "Game 1: three blue", want: ErrInvalidCount},
		{in: "Game 1: 3 purple", want: ErrInvalidColor},
	}

	for _, tt := range tests {
		if _, err := ParseGame(tt.in); !errors.Is(err, tt.want) {
			t.Errorf("ParseGame(%q) error = %v, want %v", tt.in, err, tt.want)
		}
	}
}

func TestAllows(t *testing.T) {
	games, err := ParseGames(example)
	if err != nil {
		t.Fatal(err)
	}

	want := []bool{true, true, false, false, true}
	for i, g := range games {
		if got := ElfBag.Allows(g); got != want[i] {
			t.Errorf("game %d: Allows = %v, want %v", g.ID, got, want[i])
		}
	}
}

func TestMinimumBag(t *testing.T) {
	games, err := ParseGames(example)
	if err != nil {
		t.Fatal(err)
	}

	want := []int{48, 12, 1560, 630, 36}
	for i, g := range games {
		if got := MinimumBag(g).Power(); got != want[i] {
			t.Errorf("game %d: power = %d, want %d", g.ID, got, want[i])
		}
	}
}

func TestSolve(t *testing.T) {
	got, err := Solve(context.Background(), example)
	if err != nil {
		t.Fatal(err)
	}
	if want := puzzle.New(8, 2286); got != want {
		t.Errorf("Solve() = %+v, want %+v", got, want)
	}
}
